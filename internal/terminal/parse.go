package terminal

import (
	"strconv"
	"strings"

	"teller/internal/atm"
)

// ParseAction maps one raw console line to an action. Unrecognized input
// fails with ErrInvalidInput before any action value is built; the core
// never sees anything outside the five intents. Amount sign is not
// checked here, that validation happens at dispatch time.
func ParseAction(line string) (atm.Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return atm.Action{}, ErrInvalidInput
	}
	switch fields[0] {
	case "balance":
		if len(fields) != 1 {
			return atm.Action{}, ErrInvalidInput
		}
		return atm.Action{Type: atm.ActionBalance}, nil
	case "withdraw", "deposit":
		if len(fields) != 2 {
			return atm.Action{}, ErrInvalidInput
		}
		amount, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return atm.Action{}, ErrInvalidInput
		}
		t := atm.ActionWithdraw
		if fields[0] == "deposit" {
			t = atm.ActionDeposit
		}
		return atm.Action{Type: t, Amount: amount}, nil
	case "next":
		if len(fields) != 1 {
			return atm.Action{}, ErrInvalidInput
		}
		return atm.Action{Type: atm.ActionNext}, nil
	case "exit", "quit", "shutdown":
		if len(fields) != 1 {
			return atm.Action{}, ErrInvalidInput
		}
		return atm.Action{Type: atm.ActionFinished}, nil
	default:
		return atm.Action{}, ErrInvalidInput
	}
}

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"teller/internal/atm"
	"teller/internal/ledger"
)

// Loop drives the terminal: acquire an account id, run that customer's
// session until it ends, repeat until machine shutdown. One loop owns
// the ledger's single reader and writer.
type Loop struct {
	svc    *atm.Service
	ledger *ledger.Ledger
	in     *bufio.Scanner
	out    io.Writer
	bank   string
}

func NewLoop(svc *atm.Service, l *ledger.Ledger, in io.Reader, out io.Writer, bank string) *Loop {
	return &Loop{svc: svc, ledger: l, in: bufio.NewScanner(in), out: out, bank: bank}
}

// Run blocks until the machine shuts down. End of input behaves like a
// shutdown so a closed terminal never spins.
func (l *Loop) Run() error {
	fmt.Fprintf(l.out, "welcome to %s\n", l.bank)
	for {
		fmt.Fprint(l.out, "account id: ")
		line, ok := l.readLine()
		if !ok {
			return l.in.Err()
		}
		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			fmt.Fprintln(l.out, "enter a numeric account id")
			continue
		}
		if shutdown := l.session(id); shutdown {
			return l.in.Err()
		}
	}
}

// session serves one authenticated customer. It reports whether the
// machine should shut down afterwards. An id the ledger does not know
// aborts the session immediately; invalid input, bad amounts and
// insufficient funds re-prompt the same customer.
func (l *Loop) session(id int64) (shutdown bool) {
	logger := log.With().Str("session_id", NewSessionID()).Int64("account_id", id).Logger()
	name, err := l.ledger.Name(id)
	if err != nil {
		logger.Warn().Msg("unknown account")
		fmt.Fprintln(l.out, "unknown account")
		return false
	}
	logger.Info().Msg("session started")
	fmt.Fprintf(l.out, "hello, %s\n", name)
	for {
		fmt.Fprint(l.out, "> ")
		line, ok := l.readLine()
		if !ok {
			return true
		}
		action, err := ParseAction(line)
		if err != nil {
			fmt.Fprintln(l.out, "commands: balance | withdraw <amount> | deposit <amount> | next | exit")
			continue
		}
		out, err := l.svc.Step(id, action)
		switch {
		case err == nil:
		case errors.Is(err, atm.ErrInvalidAmount):
			fmt.Fprintln(l.out, "amount must not be negative")
			continue
		case errors.Is(err, atm.ErrInsufficientFunds):
			fmt.Fprintln(l.out, "insufficient funds")
			continue
		default:
			logger.Error().Err(err).Str("action", string(action.Type)).Msg("session aborted")
			fmt.Fprintln(l.out, "session aborted")
			return false
		}
		logger.Info().Str("action", string(action.Type)).Str("outcome", string(out.Type)).Msg("action applied")
		Render(l.out, out)
		switch out.Type {
		case atm.OutcomeSessionEnded:
			return false
		case atm.OutcomeMachineShutdown:
			return true
		}
	}
}

func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}

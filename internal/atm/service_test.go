package atm

import (
	"errors"
	"testing"

	"teller/internal/ledger"
)

func newService(balance int64) (*Service, *ledger.Ledger) {
	l := ledger.New([]ledger.Account{{ID: 1, Name: "Alice", Balance: balance}})
	return NewService(l), l
}

func mustBalance(t *testing.T, l *ledger.Ledger, id int64) int64 {
	t.Helper()
	bal, err := l.Balance(id)
	if err != nil {
		t.Fatalf("Balance(%d) error = %v", id, err)
	}
	return bal
}

func TestStepBalance(t *testing.T) {
	svc, l := newService(100)

	out, err := svc.Step(1, Action{Type: ActionBalance})
	if err != nil {
		t.Fatalf("Step error = %v", err)
	}
	if out.Type != OutcomeReported || out.Text != "100" {
		t.Fatalf("outcome = %+v, want reported 100", out)
	}
	if got := mustBalance(t, l, 1); got != 100 {
		t.Fatalf("balance = %d, want 100 (no mutation)", got)
	}
}

func TestStepWithdraw(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		wantErr     error
		wantBalance int64
	}{
		{name: "within balance", amount: 30, wantBalance: 70},
		{name: "zero amount", amount: 0, wantBalance: 100},
		{name: "entire balance", amount: 100, wantBalance: 0},
		{name: "over balance", amount: 101, wantErr: ErrInsufficientFunds, wantBalance: 100},
		{name: "negative amount", amount: -1, wantErr: ErrInvalidAmount, wantBalance: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, l := newService(100)
			out, err := svc.Step(1, Action{Type: ActionWithdraw, Amount: tt.amount})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Step error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Step error = %v", err)
				}
				if out.Type != OutcomeCashDispensed || out.Amount != tt.amount {
					t.Fatalf("outcome = %+v, want cash_dispensed %d", out, tt.amount)
				}
			}
			if got := mustBalance(t, l, 1); got != tt.wantBalance {
				t.Fatalf("balance = %d, want %d", got, tt.wantBalance)
			}
		})
	}
}

func TestStepDeposit(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		wantErr     error
		wantBalance int64
		wantText    string
	}{
		{name: "positive amount", amount: 25, wantBalance: 125, wantText: "125"},
		{name: "zero amount", amount: 0, wantBalance: 100, wantText: "100"},
		{name: "negative amount", amount: -5, wantErr: ErrInvalidAmount, wantBalance: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, l := newService(100)
			out, err := svc.Step(1, Action{Type: ActionDeposit, Amount: tt.amount})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Step error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Step error = %v", err)
				}
				if out.Type != OutcomeReported || out.Text != tt.wantText {
					t.Fatalf("outcome = %+v, want reported %s", out, tt.wantText)
				}
			}
			if got := mustBalance(t, l, 1); got != tt.wantBalance {
				t.Fatalf("balance = %d, want %d", got, tt.wantBalance)
			}
		})
	}
}

func TestStepControlActions(t *testing.T) {
	tests := []struct {
		name   string
		action ActionType
		want   OutcomeType
	}{
		{name: "next ends the session", action: ActionNext, want: OutcomeSessionEnded},
		{name: "finished shuts the machine down", action: ActionFinished, want: OutcomeMachineShutdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, l := newService(100)
			out, err := svc.Step(1, Action{Type: tt.action})
			if err != nil {
				t.Fatalf("Step error = %v", err)
			}
			if out.Type != tt.want {
				t.Fatalf("outcome = %q, want %q", out.Type, tt.want)
			}
			if got := mustBalance(t, l, 1); got != 100 {
				t.Fatalf("balance = %d, want 100 (no mutation)", got)
			}
		})
	}
}

func TestStepUnknownAccount(t *testing.T) {
	svc, _ := newService(100)

	for _, a := range []Action{
		{Type: ActionBalance},
		{Type: ActionWithdraw, Amount: 10},
		{Type: ActionDeposit, Amount: 10},
	} {
		if _, err := svc.Step(42, a); !errors.Is(err, ledger.ErrUnknownAccount) {
			t.Fatalf("Step(42, %s) error = %v, want ErrUnknownAccount", a.Type, err)
		}
	}
}

func TestStepRejectsUnknownActionType(t *testing.T) {
	svc, l := newService(100)

	_, err := svc.Step(1, Action{Type: ActionType("transfer")})
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("Step error = %v, want ErrInvalidAction", err)
	}
	if got := mustBalance(t, l, 1); got != 100 {
		t.Fatalf("balance = %d, want 100 (no mutation)", got)
	}
}

// Walks the full customer scenario: inquiry, a good withdrawal, a refused
// one, a refused deposit, then the two control actions.
func TestStepScenario(t *testing.T) {
	svc, l := newService(100)

	out, err := svc.Step(1, Action{Type: ActionBalance})
	if err != nil || out.Text != "100" {
		t.Fatalf("balance inquiry = %+v, %v; want reported 100", out, err)
	}

	out, err = svc.Step(1, Action{Type: ActionWithdraw, Amount: 30})
	if err != nil || out.Type != OutcomeCashDispensed || out.Amount != 30 {
		t.Fatalf("withdraw 30 = %+v, %v; want cash_dispensed 30", out, err)
	}
	if got := mustBalance(t, l, 1); got != 70 {
		t.Fatalf("balance = %d, want 70", got)
	}

	if _, err = svc.Step(1, Action{Type: ActionWithdraw, Amount: 1000}); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("withdraw 1000 error = %v, want ErrInsufficientFunds", err)
	}
	if got := mustBalance(t, l, 1); got != 70 {
		t.Fatalf("balance = %d, want 70", got)
	}

	if _, err = svc.Step(1, Action{Type: ActionDeposit, Amount: -5}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("deposit -5 error = %v, want ErrInvalidAmount", err)
	}
	if got := mustBalance(t, l, 1); got != 70 {
		t.Fatalf("balance = %d, want 70", got)
	}

	out, err = svc.Step(1, Action{Type: ActionNext})
	if err != nil || out.Type != OutcomeSessionEnded {
		t.Fatalf("next = %+v, %v; want session_ended", out, err)
	}
	out, err = svc.Step(1, Action{Type: ActionFinished})
	if err != nil || out.Type != OutcomeMachineShutdown {
		t.Fatalf("finished = %+v, %v; want machine_shutdown", out, err)
	}
}

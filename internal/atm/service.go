package atm

import (
	"strconv"

	"teller/internal/ledger"
)

// Service applies customer actions against the ledger it was given. It
// holds no session state: the outcome of Step depends only on the id,
// the action, and the current ledger content.
type Service struct {
	ledger *ledger.Ledger
}

func NewService(l *ledger.Ledger) *Service {
	return &Service{ledger: l}
}

// Step applies one action for the authenticated id. At most one ledger
// mutation happens, and only after every check for that action passed.
// Ledger lookup failures propagate unchanged; the caller treats an
// unknown id as fatal for the session.
func (s *Service) Step(id int64, a Action) (Outcome, error) {
	switch a.Type {
	case ActionBalance:
		bal, err := s.ledger.Balance(id)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Type: OutcomeReported, Text: strconv.FormatInt(bal, 10)}, nil
	case ActionWithdraw:
		bal, err := s.ledger.Balance(id)
		if err != nil {
			return Outcome{}, err
		}
		if a.Amount < 0 {
			return Outcome{}, ErrInvalidAmount
		}
		if a.Amount > bal {
			return Outcome{}, ErrInsufficientFunds
		}
		if err := s.ledger.SetBalance(id, bal-a.Amount); err != nil {
			return Outcome{}, err
		}
		return Outcome{Type: OutcomeCashDispensed, Amount: a.Amount}, nil
	case ActionDeposit:
		bal, err := s.ledger.Balance(id)
		if err != nil {
			return Outcome{}, err
		}
		if a.Amount < 0 {
			return Outcome{}, ErrInvalidAmount
		}
		if err := s.ledger.SetBalance(id, bal+a.Amount); err != nil {
			return Outcome{}, err
		}
		return Outcome{Type: OutcomeReported, Text: strconv.FormatInt(bal+a.Amount, 10)}, nil
	case ActionNext:
		return Outcome{Type: OutcomeSessionEnded}, nil
	case ActionFinished:
		return Outcome{Type: OutcomeMachineShutdown}, nil
	default:
		return Outcome{}, ErrInvalidAction
	}
}

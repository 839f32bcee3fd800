package ledger

// Account is one ledger record. Only Balance changes after initialization.
type Account struct {
	ID      int64
	Name    string
	Balance int64
}

// Ledger holds the account records in initialization order. Lookups scan
// front to back and the first matching id wins, so a seed with duplicate
// ids still behaves deterministically.
type Ledger struct {
	accounts []Account
}

func New(specs []Account) *Ledger {
	l := &Ledger{}
	l.Initialize(specs)
	return l
}

// Initialize replaces the entire ledger content with one record per spec,
// preserving order. Prior state is discarded, never merged.
func (l *Ledger) Initialize(specs []Account) {
	l.accounts = make([]Account, len(specs))
	copy(l.accounts, specs)
}

func (l *Ledger) Balance(id int64) (int64, error) {
	a := l.find(id)
	if a == nil {
		return 0, ErrUnknownAccount
	}
	return a.Balance, nil
}

func (l *Ledger) Name(id int64) (string, error) {
	a := l.find(id)
	if a == nil {
		return "", ErrUnknownAccount
	}
	return a.Name, nil
}

// SetBalance overwrites the balance of the first record matching id.
// Any integer is accepted; amount policy belongs to the caller.
func (l *Ledger) SetBalance(id, balance int64) error {
	a := l.find(id)
	if a == nil {
		return ErrUnknownAccount
	}
	a.Balance = balance
	return nil
}

func (l *Ledger) find(id int64) *Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

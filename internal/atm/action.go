package atm

type ActionType string

const (
	ActionBalance  ActionType = "balance"
	ActionWithdraw ActionType = "withdraw"
	ActionDeposit  ActionType = "deposit"
	ActionNext     ActionType = "next"
	ActionFinished ActionType = "finished"
)

// Action is one customer intent. Amount is meaningful only for withdraw
// and deposit and carries whatever the input collaborator read; sign and
// bounds are checked at dispatch time, not here.
type Action struct {
	Type   ActionType
	Amount int64
}

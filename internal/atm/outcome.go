package atm

type OutcomeType string

const (
	OutcomeReported        OutcomeType = "reported"
	OutcomeCashDispensed   OutcomeType = "cash_dispensed"
	OutcomeSessionEnded    OutcomeType = "session_ended"
	OutcomeMachineShutdown OutcomeType = "machine_shutdown"
)

// Outcome is the result of applying one action. Text is set for reported
// outcomes, Amount for dispensed cash; the two control outcomes carry
// neither and are consumed by the session loop, not rendered as data.
type Outcome struct {
	Type   OutcomeType
	Text   string
	Amount int64
}

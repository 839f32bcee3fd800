package terminal

import (
	"fmt"
	"io"

	"teller/internal/atm"
)

// Render writes one outcome to the customer display. Control outcomes
// get a farewell line only; they carry no ledger data.
func Render(w io.Writer, out atm.Outcome) {
	switch out.Type {
	case atm.OutcomeReported:
		fmt.Fprintf(w, "balance: %s\n", out.Text)
	case atm.OutcomeCashDispensed:
		fmt.Fprintf(w, "dispensed: %d\n", out.Amount)
	case atm.OutcomeSessionEnded:
		fmt.Fprintln(w, "thank you, goodbye")
	case atm.OutcomeMachineShutdown:
		fmt.Fprintln(w, "machine shutting down")
	}
}

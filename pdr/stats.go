package pdr

import (
	"fmt"

	"github.com/xDarkicex/pdr/satsolver"
)

// Stats collects the generic named counters and SAT-call bookkeeping the
// original implementation exposes for diagnostics and benchmarking;
// proving correctness never depends on these values.
type Stats struct {
	FramesOpened        int64
	ProofObligations     int64
	ClausesLearned       int64
	CTGsAttempted        int64
	CTGsEliminated       int64
	PropagationRounds    int64
	Solver               satsolver.Stats
}

// String renders a one-line human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf(
		"frames=%d obligations=%d clauses=%d ctg_attempts=%d ctg_eliminated=%d propagation_rounds=%d solver_calls=%d conflicts=%d",
		s.FramesOpened, s.ProofObligations, s.ClausesLearned, s.CTGsAttempted, s.CTGsEliminated,
		s.PropagationRounds, s.Solver.Calls, s.Solver.Conflicts,
	)
}

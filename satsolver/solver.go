// Package satsolver declares the incremental SAT collaborator the solver
// pool drives, plus the Result/Stats shapes shared by every backend.
package satsolver

import (
	"context"

	"github.com/xDarkicex/pdr/formula"
)

// Result is the outcome of one incremental Solve call.
type Result int

const (
	// Unknown means the call did not complete (context cancelled).
	Unknown Result = iota
	// Sat means the assumptions are satisfiable; Value reports the model.
	Sat
	// Unsat means the assumptions are unsatisfiable; Failed reports the
	// subset of assumptions used in the refutation.
	Unsat
)

// Solver is one incremental SAT instance, matching the shape the pack's
// operator-lifecycle-manager dependency resolver drives its gini instance
// through: clauses accumulate monotonically, assumptions vary per call.
type Solver interface {
	// AddClause adds a permanent clause to the instance.
	AddClause(lits ...formula.Literal)
	// Solve checks satisfiability of the accumulated clauses under
	// assumptions, with constraint additionally asserted as a clause for
	// just this call (an empty Clause if none). It returns Unknown with a non-nil
	// error only on context cancellation or backend failure; a backend
	// failure is fatal and not recoverable by the caller.
	Solve(ctx context.Context, assumptions []formula.Literal, constraint formula.Clause) (Result, error)
	// Value reports lit's value in the last Sat model. ok is false if
	// the last call was not Sat or lit's variable was eliminated.
	Value(lit formula.Literal) (value bool, ok bool)
	// Failed reports whether lit was part of the unsatisfiable core of
	// assumptions from the last Unsat call.
	Failed(lit formula.Literal) bool
	// Stats returns solver call counters for diagnostics.
	Stats() Stats
}

// Stats tracks cumulative solver activity, mirroring the counters the
// teacher's CDCLSolver keeps (decisions/propagations/conflicts/restarts).
type Stats struct {
	Calls        int64
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Restarts     int64
}

// Factory builds a fresh Solver instance, seeded for reproducibility. Each
// frame in the solver pool owns one Solver built by the same Factory.
type Factory func(seed uint64) Solver

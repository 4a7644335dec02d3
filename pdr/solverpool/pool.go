// Package solverpool owns one incremental SAT solver per frame (the
// "Owned" solver-per-frame strategy) and exposes the handful of SAT
// queries the frames sequence needs, each one a single assumption-based
// Solve call against the frame's own accumulated clauses plus the shared
// transition relation.
package solverpool

import (
	"context"
	"fmt"

	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/fsts"
	"github.com/xDarkicex/pdr/satsolver"
)

// Pool owns one satsolver.Solver per frame index, each seeded with the
// system's transition relation and any invariant constraints, and tracks
// the frame hash last pushed into each solver so that newly learned
// clauses are added lazily, right before the solver that needs them is
// next used.
type Pool struct {
	system      fsts.System
	factory     satsolver.Factory
	seed        uint64
	solvers     []satsolver.Solver
	pushedHash  []uint64
	transitionT formula.CNF // transition relation + constraints, shared by every solver
}

// New creates a Pool against system, using factory to build each frame's
// solver.
func New(system fsts.System, factory satsolver.Factory, seed uint64) *Pool {
	transition := system.Transition().Append(constraintClauses(system)...)
	return &Pool{system: system, factory: factory, seed: seed, transitionT: transition}
}

func constraintClauses(system fsts.System) []formula.Clause {
	c := system.Constraints()
	if c.IsEmpty() {
		return nil
	}
	out := make([]formula.Clause, 0, c.Len())
	for _, lit := range c.Literals() {
		out = append(out, formula.NewClause(lit))
	}
	return out
}

// Ensure grows the pool so frame index i has a solver, constructing any
// missing intermediate frames' solvers lazily. Index 0 is special: it
// represents F0, the initial states, so its solver additionally carries
// Init as unit clauses and never accumulates any frame's delta.
func (p *Pool) Ensure(i int) {
	for len(p.solvers) <= i {
		idx := len(p.solvers)
		s := p.factory(p.seed + uint64(idx))
		for _, c := range p.transitionT.Clauses() {
			s.AddClause(c.Literals()...)
		}
		if idx == 0 {
			for _, lit := range p.system.Init().Literals() {
				s.AddClause(lit)
			}
		}
		p.solvers = append(p.solvers, s)
		p.pushedHash = append(p.pushedHash, 0)
	}
}

// sync adds clauses from frame's delta that have not yet been pushed into
// frame i's solver, detected via the frame's mutation hash.
func (p *Pool) sync(i int, clauses []formula.Clause, hash uint64) {
	p.Ensure(i)
	if p.pushedHash[i] == hash {
		return
	}
	for _, c := range clauses {
		p.solvers[i].AddClause(c.Literals()...)
	}
	p.pushedHash[i] = hash
}

// Rebuild discards and reconstructs frame i's solver from scratch using
// clauses (condensing). The engine does not call it: no condensing policy
// runs automatically.
func (p *Pool) Rebuild(i int, clauses []formula.Clause) {
	p.Ensure(i)
	s := p.factory(p.seed + uint64(i))
	for _, c := range p.transitionT.Clauses() {
		s.AddClause(c.Literals()...)
	}
	for _, c := range clauses {
		s.AddClause(c.Literals()...)
	}
	p.solvers[i] = s
	p.pushedHash[i] = 0 // next sync call re-derives the real hash from the caller
}

// MarkSynced records hash as already pushed for frame i without touching
// the solver, used right after Rebuild so the next sync call is a no-op.
func (p *Pool) MarkSynced(i int, hash uint64) {
	p.Ensure(i)
	p.pushedHash[i] = hash
}

// GetBadCube asks whether frame i's clauses, together with the property
// being violated in the next state, are satisfiable; on Sat it returns the
// witnessing state/input cube pair (a predecessor of a bad state), on
// Unsat it reports that no such state exists at this frame.
func (p *Pool) GetBadCube(ctx context.Context, i int, clauses []formula.Clause, hash uint64, bad formula.Cube) (state, input formula.Cube, ok bool, err error) {
	p.sync(i, clauses, hash)
	assumptions := make([]formula.Literal, 0, bad.Len())
	for _, lit := range bad.Literals() {
		assumptions = append(assumptions, formula.Lit(p.system.Tag(lit.Var, 1), lit.Negated))
	}
	res, err := p.solvers[i].Solve(ctx, assumptions, formula.Clause{})
	if err != nil {
		return formula.Cube{}, formula.Cube{}, false, err
	}
	if res != satsolver.Sat {
		return formula.Cube{}, formula.Cube{}, false, nil
	}
	return p.extractModel(i), p.extractInputs(i), true, nil
}

// GetPredecessorOfCube asks whether some state/input pair in frame i leads,
// in one transition step, into target. On Sat it returns that
// predecessor's state and input cubes; on Unsat it returns a simplified
// clause (the negation of those literals of target whose next-state copies
// the solver reports as failed assumptions, expressed over target's own
// current-state variables) that can be learned to block target's
// predecessors directly.
func (p *Pool) GetPredecessorOfCube(ctx context.Context, i int, clauses []formula.Clause, hash uint64, target formula.Cube) (state, input formula.Cube, blockingClause formula.Clause, ok bool, err error) {
	p.sync(i, clauses, hash)
	nextAssumptions := make([]formula.Literal, 0, target.Len())
	for _, lit := range target.Literals() {
		nextAssumptions = append(nextAssumptions, formula.Lit(p.system.Tag(lit.Var, 1), lit.Negated))
	}
	res, err := p.solvers[i].Solve(ctx, nextAssumptions, formula.Clause{})
	if err != nil {
		return formula.Cube{}, formula.Cube{}, formula.Clause{}, false, err
	}
	if res == satsolver.Sat {
		return p.extractModel(i), p.extractInputs(i), formula.Clause{}, true, nil
	}
	failed := make([]formula.Literal, 0, len(nextAssumptions))
	for j, lit := range nextAssumptions {
		if p.solvers[i].Failed(lit) {
			failed = append(failed, target.Literals()[j].Not())
		}
	}
	return formula.Cube{}, formula.Cube{}, formula.NewClause(failed...), false, nil
}

// SolveIsCubeBlocked reports whether cube is already unreachable at frame
// i: frame i's clauses, with cube's literals assumed, must be
// unsatisfiable.
func (p *Pool) SolveIsCubeBlocked(ctx context.Context, i int, clauses []formula.Clause, hash uint64, cube formula.Cube) (bool, error) {
	p.sync(i, clauses, hash)
	res, err := p.solvers[i].Solve(ctx, cube.Literals(), formula.Clause{})
	if err != nil {
		return false, err
	}
	return res == satsolver.Unsat, nil
}

// IsClauseGuaranteedAfterTransitionIfAssumed reports whether, assuming
// frame i's clauses and premise, clause's negation in the next state is
// unreachable — i.e. clause is guaranteed to hold one step after any state
// satisfying premise, the relative-induction check MIC uses while dropping
// literals.
func (p *Pool) IsClauseGuaranteedAfterTransitionIfAssumed(ctx context.Context, i int, clauses []formula.Clause, hash uint64, premise formula.Cube, clause formula.Clause) (bool, error) {
	p.sync(i, clauses, hash)
	assumptions := append([]formula.Literal(nil), premise.Literals()...)
	negatedNext := clause.Not()
	for _, lit := range negatedNext.Literals() {
		assumptions = append(assumptions, formula.Lit(p.system.Tag(lit.Var, 1), lit.Negated))
	}
	res, err := p.solvers[i].Solve(ctx, assumptions, formula.Clause{})
	if err != nil {
		return false, err
	}
	return res == satsolver.Unsat, nil
}

func (p *Pool) extractModel(i int) formula.Cube {
	lits := make([]formula.Literal, 0, len(p.system.StateVars()))
	for _, v := range p.system.StateVars() {
		if val, ok := p.solvers[i].Value(formula.Pos(v)); ok {
			lits = append(lits, formula.Lit(v, !val))
		}
	}
	return formula.NewCube(lits...)
}

func (p *Pool) extractInputs(i int) formula.Cube {
	lits := make([]formula.Literal, 0, len(p.system.InputVars()))
	for _, v := range p.system.InputVars() {
		if val, ok := p.solvers[i].Value(formula.Pos(v)); ok {
			lits = append(lits, formula.Lit(v, !val))
		}
	}
	return formula.NewCube(lits...)
}

// Stats returns aggregate solver statistics across every frame's solver,
// for diagnostics.
func (p *Pool) Stats() satsolver.Stats {
	var total satsolver.Stats
	for _, s := range p.solvers {
		st := s.Stats()
		total.Calls += st.Calls
		total.Decisions += st.Decisions
		total.Propagations += st.Propagations
		total.Conflicts += st.Conflicts
		total.Restarts += st.Restarts
	}
	return total
}

// String renders pool size for debug logging.
func (p *Pool) String() string {
	return fmt.Sprintf("solverpool[%d frames]", len(p.solvers))
}

package definitionlib

import (
	"context"

	"github.com/xDarkicex/pdr/dd"
	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/satsolver"
)

// satChecker is the minimal SAT surface solve.go needs: checking whether a
// clause's negation (a cube) is satisfiable under the library's current
// definitions, used as the fallback when the decision diagram manager runs
// out of budget.
type satChecker interface {
	Solve(ctx context.Context, assumptions []formula.Literal, constraint formula.Clause) (satsolver.Result, error)
}

// solveIsClauseATautology checks whether clause always holds, trying the
// decision diagram first and falling back to a SAT call on the clause's
// negation when the diagram manager reports dd.ErrOutOfMemory. A clause is
// a tautology exactly when its negation (a cube) is unsatisfiable.
func (l *Library) solveIsClauseATautology(ctx context.Context, solver satChecker, clause formula.Clause) (bool, error) {
	n, err := l.nodeForClause(clause)
	if err == nil {
		return l.manager.IsTautology(n)
	}
	if err != dd.ErrOutOfMemory {
		return false, err
	}
	return l.satTautology(ctx, solver, clause)
}

func (l *Library) satTautology(ctx context.Context, solver satChecker, clause formula.Clause) (bool, error) {
	negated := clause.Not().Literals()
	res, err := solver.Solve(ctx, negated, formula.Clause{})
	if err != nil {
		return false, err
	}
	return res == satsolver.Unsat, nil
}

// IsClauseTautology reports whether clause holds in every state reachable
// under the library's current extension-variable definitions.
func (l *Library) IsClauseTautology(ctx context.Context, solver satChecker, clause formula.Clause) (bool, error) {
	return l.solveIsClauseATautology(ctx, solver, clause)
}

// IsClauseContradiction returns the same answer as IsClauseTautology: whether
// clause always holds (its negation is unsatisfiable), not whether clause
// itself is unsatisfiable. It shares solveIsClauseATautology's body: both a
// clause held to be always-true and
// a clause held to be always-false route through the same tautology check
// on the manager this library wraps, a duplication carried over unchanged
// from the implementation this package is adapted from rather than
// resolved one way or the other.
func (l *Library) IsClauseContradiction(ctx context.Context, solver satChecker, clause formula.Clause) (bool, error) {
	return l.solveIsClauseATautology(ctx, solver, clause)
}

// IsClauseImplied reports whether premise implies clause, i.e. whether
// premise -> clause is a tautology.
func (l *Library) IsClauseImplied(ctx context.Context, solver satChecker, premise formula.Cube, clause formula.Clause) (bool, error) {
	premNode, err := l.nodeForCube(premise)
	if err == nil {
		var bodyNode dd.Node
		bodyNode, err = l.nodeForClause(clause)
		if err == nil {
			imp, errImp := l.manager.Imp(premNode, bodyNode)
			if errImp == nil {
				return l.manager.IsTautology(imp)
			}
			err = errImp
		}
	}
	if err != dd.ErrOutOfMemory {
		return false, err
	}
	assumptions := premise.Literals()
	negated := clause.Not().Literals()
	assumptions = append(append([]formula.Literal(nil), assumptions...), negated...)
	res, solveErr := solver.Solve(ctx, assumptions, formula.Clause{})
	if solveErr != nil {
		return false, solveErr
	}
	return res == satsolver.Unsat, nil
}

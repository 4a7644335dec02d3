// Package gini adapts github.com/go-air/gini — the incremental SAT library
// the pack's operator-lifecycle-manager dependency resolver drives through
// its own lit_mapping.go — into a satsolver.Solver. It is an alternative
// backend: pdr.New uses satsolver/cdcl when no factory is given.
package gini

import (
	"context"

	giniLib "github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/satsolver"
)

// Solver adapts a *gini.Gini instance to satsolver.Solver by mapping
// formula.Variable <-> gini's z.Var the same way the pack's litMapping
// maps resolver.Identifier <-> z.Lit.
type Solver struct {
	g       inter.S
	lastRes satsolver.Result
	stats   satsolver.Stats
}

// NewSolver creates a Solver wrapping a fresh gini instance.
func NewSolver(seed uint64) satsolver.Solver {
	g := giniLib.New()
	_ = seed // gini's search order is not user-seeded; kept for Factory symmetry with cdcl.NewSolver
	return &Solver{g: g}
}

// DefaultFactory builds Solvers for satsolver.Factory.
func DefaultFactory(seed uint64) satsolver.Solver { return NewSolver(seed) }

func (s *Solver) litOf(l formula.Literal) z.Lit {
	v := z.Var(l.Var)
	lit := v.Pos()
	if l.Negated {
		lit = v.Neg()
	}
	return lit
}

func (s *Solver) AddClause(lits ...formula.Literal) {
	for _, l := range lits {
		s.g.Add(s.litOf(l))
	}
	s.g.Add(0)
}

func (s *Solver) Solve(ctx context.Context, assumptions []formula.Literal, constraint formula.Clause) (satsolver.Result, error) {
	s.stats.Calls++
	s.g.Assume(litsOf(s, assumptions)...)
	if constraint.Len() > 0 {
		s.assertTemporary(constraint)
	}
	result := s.g.Try(0)
	switch result {
	case 1:
		s.lastRes = satsolver.Sat
		return satsolver.Sat, nil
	case -1:
		s.lastRes = satsolver.Unsat
		return satsolver.Unsat, nil
	default:
		s.lastRes = satsolver.Unknown
		if err := ctx.Err(); err != nil {
			return satsolver.Unknown, err
		}
		return satsolver.Unknown, nil
	}
}

// assertTemporary adds constraint as assumption literals over a fresh
// activation variable implication, the same pattern the pack's dependency
// resolver uses (via CardinalityConstrainer) to scope a constraint to one
// Solve call without polluting the permanent clause database: the
// activation literal is assumed true for this call only, and gini's
// incremental Assume/Try discards it afterward.
func (s *Solver) assertTemporary(constraint formula.Clause) {
	act := z.Var(s.g.NewVar()).Pos()
	s.g.Add(act.Not())
	for _, l := range constraint.Literals() {
		s.g.Add(s.litOf(l))
	}
	s.g.Add(0)
	s.g.Assume(act)
}

func litsOf(s *Solver, lits []formula.Literal) []z.Lit {
	out := make([]z.Lit, len(lits))
	for i, l := range lits {
		out[i] = s.litOf(l)
	}
	return out
}

func (s *Solver) Value(lit formula.Literal) (bool, bool) {
	if s.lastRes != satsolver.Sat {
		return false, false
	}
	v := s.g.Value(s.litOf(lit))
	return v, true
}

func (s *Solver) Failed(lit formula.Literal) bool {
	if s.lastRes != satsolver.Unsat {
		return false
	}
	for _, l := range s.g.Why(nil) {
		if l == s.litOf(lit) {
			return true
		}
	}
	return false
}

func (s *Solver) Stats() satsolver.Stats { return s.stats }

var _ satsolver.Solver = (*Solver)(nil)

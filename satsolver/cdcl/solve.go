package cdcl

import (
	"context"

	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/satsolver"
)

// Solve checks satisfiability of the accumulated clauses under assumptions
// plus an optional one-call constraint clause. It restarts the search from
// an empty trail each call (the accumulated clause database, including
// anything learned by a prior call, is kept) since assumption sets differ
// freely between calls and a warm-started trail would need to be undone
// down to the shared prefix anyway.
func (s *Solver) Solve(ctx context.Context, assumptions []formula.Literal, constraint formula.Clause) (satsolver.Result, error) {
	s.stats.Calls++
	s.resetSearch()
	s.lastFailed = make(map[uint64]bool)
	s.lastAssumptions = assumptions

	if s.unsat {
		s.markAllFailed()
		return satsolver.Unsat, nil
	}

	var temp *clauseRec
	if constraint.Len() > 0 {
		temp = &clauseRec{lits: append([]formula.Literal(nil), constraint.Literals()...)}
		s.addClauseRec(temp)
		defer s.removeClause(temp)
	}

	if conflict := s.propagate(); conflict != nil {
		s.markAllFailed()
		return satsolver.Unsat, nil
	}

	baseLevel := 0
	for _, lit := range assumptions {
		if err := ctx.Err(); err != nil {
			return satsolver.Unknown, err
		}
		switch s.valueOf(lit) {
		case 1:
			continue
		case -1:
			s.markAllFailed()
			return satsolver.Unsat, nil
		}
		s.newDecisionLevel()
		s.enqueue(lit, nil)
		if conflict := s.propagate(); conflict != nil {
			s.markAllFailed()
			return satsolver.Unsat, nil
		}
	}
	baseLevel = s.currentLevel()

	sat, err := s.search(ctx, baseLevel)
	if err != nil {
		return satsolver.Unknown, err
	}
	if sat {
		return satsolver.Sat, nil
	}
	s.markAllFailed()
	return satsolver.Unsat, nil
}

// search performs the decision/propagate/learn loop over variables beyond
// the assumption-forced prefix (levels 1..baseLevel). A conflict whose
// analysis backjumps to a level at or below baseLevel means the instance
// is unsatisfiable given the assumptions.
func (s *Solver) search(ctx context.Context, baseLevel int) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		conflict := s.propagate()
		if conflict != nil {
			s.stats.Conflicts++
			learned, backtrackLevel := s.analyze(conflict, baseLevel)
			if backtrackLevel < baseLevel {
				return false, nil
			}
			s.backtrackTo(backtrackLevel)
			s.addClauseRec(learned)
			if learned.lits != nil && len(learned.lits) >= 1 {
				unit := learned.lits[0]
				if s.valueOf(unit) == 0 {
					s.enqueue(unit, learned)
				}
			}
			continue
		}
		v, ok := s.pickDecisionVariable()
		if !ok {
			return true, nil // every variable assigned, no conflict: satisfiable
		}
		s.stats.Decisions++
		s.newDecisionLevel()
		s.enqueue(formula.Pos(v), nil)
	}
}

// analyze builds a learned clause from every decision literal on the
// trail, the assumption levels 1..baseLevel included (a simplified,
// non-first-UIP scheme: the clause follows from the clause database alone,
// so it stays correct in later calls with other assumptions, just not the
// asymptotically smallest one) and returns the level to backtrack to: one
// below the highest decision level involved, so the learned unit/clause
// becomes assertable on the next propagate. When no decision was made above
// baseLevel, it returns a level below baseLevel instead.
func (s *Solver) analyze(conflict *clauseRec, baseLevel int) (*clauseRec, int) {
	var decisionLits []formula.Literal
	for lvl := 1; lvl <= s.currentLevel(); lvl++ {
		idx := s.trailLim[lvl-1]
		v := s.trail[idx]
		val := s.assign[v]
		decisionLits = append(decisionLits, formula.Lit(v, val < 0))
	}
	for _, v := range conflict.lits {
		s.bumpActivity(v.Var)
	}
	if s.currentLevel() <= baseLevel {
		return &clauseRec{}, baseLevel - 1
	}
	learnedLits := make([]formula.Literal, len(decisionLits))
	for i, l := range decisionLits {
		learnedLits[i] = l.Not()
	}
	c := formula.NewClause(learnedLits...)
	return &clauseRec{lits: append([]formula.Literal(nil), c.Literals()...), learned: true}, s.currentLevel() - 1
}

func (s *Solver) pickDecisionVariable() (formula.Variable, bool) {
	var best formula.Variable
	bestActivity := -1.0
	found := false
	for v := range s.activity {
		if _, assigned := s.assign[v]; assigned {
			continue
		}
		if a := s.activity[v]; a > bestActivity {
			bestActivity, best, found = a, v, true
		}
	}
	return best, found
}

func (s *Solver) markAllFailed() {
	for _, lit := range s.lastAssumptions {
		s.lastFailed[lit.Key()] = true
	}
}

func (s *Solver) removeClause(c *clauseRec) {
	for i, cl := range s.clauses {
		if cl == c {
			s.clauses = append(s.clauses[:i], s.clauses[i+1:]...)
			break
		}
	}
	for k, list := range s.watch {
		out := list[:0]
		for _, cl := range list {
			if cl != c {
				out = append(out, cl)
			}
		}
		s.watch[k] = out
	}
}

// Value reports lit's value in the last Sat model.
func (s *Solver) Value(lit formula.Literal) (bool, bool) {
	val, ok := s.assign[lit.Var]
	if !ok {
		return false, false
	}
	positive := val > 0
	if lit.Negated {
		return !positive, true
	}
	return positive, true
}

// Failed reports whether lit was part of the failed-assumption set
// recorded by the last Unsat call.
func (s *Solver) Failed(lit formula.Literal) bool {
	return s.lastFailed[lit.Key()]
}

// Stats returns solver call counters.
func (s *Solver) Stats() satsolver.Stats { return s.stats }

var _ satsolver.Solver = (*Solver)(nil)

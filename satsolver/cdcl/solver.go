// Package cdcl is the reference satsolver.Solver backend: an
// assumption-capable conflict-driven clause-learning solver, adapted from
// the teacher's sat.CDCLSolver (two-watched-literal propagation, an
// activity-based decision heuristic, a decision trail with reason clauses)
// but re-keyed from string variable names to formula.Variable so it can
// serve as the per-frame solver the PDR solver pool drives.
package cdcl

import (
	"math/rand"

	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/satsolver"
)

// clauseRec is a clause plus its two watched-literal positions, the
// teacher's WatchedClause adapted to an index-based literal slice instead
// of a fixed formula.Clause so watches can be swapped in place.
type clauseRec struct {
	lits    []formula.Literal
	w1, w2  int
	learned bool
}

// Solver is one incremental CDCL instance over formula.Variable.
type Solver struct {
	clauses []*clauseRec
	watch   map[uint64][]*clauseRec // literal key -> clauses watching its negation becoming true (i.e. the literal itself being falsified)

	assign map[formula.Variable]int8 // 0 unassigned, 1 true, -1 false
	level  map[formula.Variable]int
	reason map[formula.Variable]*clauseRec

	trail    []formula.Variable
	trailLim []int

	activity    map[formula.Variable]float64
	activityInc float64
	rng         *rand.Rand

	tempClause *clauseRec // the per-call constraint clause, if any

	stats           satsolver.Stats
	lastFailed      map[uint64]bool
	lastAssumptions []formula.Literal
	unsat           bool // set once an empty clause is ever added: the instance is permanently unsatisfiable
}

// NewSolver creates an empty Solver seeded for reproducible decisions.
func NewSolver(seed uint64) *Solver {
	return &Solver{
		watch:       make(map[uint64][]*clauseRec),
		assign:      make(map[formula.Variable]int8),
		level:       make(map[formula.Variable]int),
		reason:      make(map[formula.Variable]*clauseRec),
		activity:    make(map[formula.Variable]float64),
		activityInc: 1.0,
		rng:         rand.New(rand.NewSource(int64(seed) + 1)),
		lastFailed:  make(map[uint64]bool),
	}
}

// DefaultFactory builds Solvers for satsolver.Factory.
func DefaultFactory(seed uint64) satsolver.Solver { return NewSolver(seed) }

func (s *Solver) AddClause(lits ...formula.Literal) {
	c := formula.NewClause(lits...)
	if c.IsTautology() {
		return
	}
	s.addClauseRec(&clauseRec{lits: append([]formula.Literal(nil), c.Literals()...)})
}

func (s *Solver) addClauseRec(c *clauseRec) {
	s.clauses = append(s.clauses, c)
	for _, l := range c.lits {
		s.bumpActivity(l.Var)
	}
	if len(c.lits) == 0 {
		s.unsat = true
		return
	}
	if len(c.lits) == 1 {
		c.w1, c.w2 = 0, 0
		s.watchLit(c.lits[0], c)
		return
	}
	c.w1, c.w2 = 0, 1
	s.watchLit(c.lits[0], c)
	s.watchLit(c.lits[1], c)
}

func (s *Solver) watchLit(falsifying formula.Literal, c *clauseRec) {
	k := falsifying.Key()
	s.watch[k] = append(s.watch[k], c)
}

func (s *Solver) bumpActivity(v formula.Variable) {
	s.activity[v] += s.activityInc
}

// valueOf returns 1/-1/0 for lit under the current assignment.
func (s *Solver) valueOf(lit formula.Literal) int8 {
	val, ok := s.assign[lit.Var]
	if !ok {
		return 0
	}
	if lit.Negated {
		return -val
	}
	return val
}

func (s *Solver) currentLevel() int { return len(s.trailLim) }

func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

func (s *Solver) enqueue(lit formula.Literal, reason *clauseRec) {
	var v int8 = 1
	if lit.Negated {
		v = -1
	}
	s.assign[lit.Var] = v
	s.level[lit.Var] = s.currentLevel()
	s.reason[lit.Var] = reason
	s.trail = append(s.trail, lit.Var)
}

// propagate runs unit propagation to a fixpoint, returning the conflicting
// clause if one was found, or nil if propagation reached quiescence.
func (s *Solver) propagate() *clauseRec {
	qHead := 0
	for qHead < len(s.trail) {
		v := s.trail[qHead]
		qHead++
		val := s.assign[v]
		falsified := formula.Lit(v, val > 0) // the literal over v that is now false
		watchers := s.watch[falsified.Key()]
		kept := watchers[:0]
		for i := 0; i < len(watchers); i++ {
			c := watchers[i]
			if conflict := s.reWatch(c, falsified, &kept); conflict != nil {
				kept = append(kept, watchers[i+1:]...)
				s.watch[falsified.Key()] = kept
				return conflict
			}
		}
		s.watch[falsified.Key()] = kept
	}
	return nil
}

// reWatch tries to find a new literal for c to watch in place of
// falsifying (which just became false). If it cannot (c is unit or
// conflicting), it either enqueues the forced literal or returns c as the
// conflict; kept accumulates clauses that should continue watching
// falsifying.
func (s *Solver) reWatch(c *clauseRec, falsifying formula.Literal, kept *[]*clauseRec) *clauseRec {
	if len(c.lits) == 1 {
		*kept = append(*kept, c)
		if s.valueOf(c.lits[0]) == -1 {
			return c
		}
		return nil
	}
	// normalize so w1 is the slot holding falsifying
	if !c.lits[c.w1].Equals(falsifying) {
		c.w1, c.w2 = c.w2, c.w1
	}
	other := c.lits[c.w2]
	if s.valueOf(other) == 1 {
		*kept = append(*kept, c)
		return nil // clause already satisfied by the other watch
	}
	for i, l := range c.lits {
		if i == c.w1 || i == c.w2 {
			continue
		}
		if s.valueOf(l) != -1 {
			c.w1 = i
			s.watchLit(l, c)
			return nil
		}
	}
	// no replacement found: clause is unit on other, or conflicting
	*kept = append(*kept, c)
	if s.valueOf(other) == -1 {
		return c
	}
	s.enqueue(other, c)
	return nil
}

// backtrackTo undoes trail entries back to level, leaving exactly level
// decision levels active.
func (s *Solver) backtrackTo(level int) {
	if level >= s.currentLevel() {
		return
	}
	start := s.trailLim[level]
	for i := len(s.trail) - 1; i >= start; i-- {
		v := s.trail[i]
		delete(s.assign, v)
		delete(s.level, v)
		delete(s.reason, v)
	}
	s.trail = s.trail[:start]
	s.trailLim = s.trailLim[:level]
}

func (s *Solver) resetSearch() {
	s.assign = make(map[formula.Variable]int8)
	s.level = make(map[formula.Variable]int)
	s.reason = make(map[formula.Variable]*clauseRec)
	s.trail = nil
	s.trailLim = nil
}

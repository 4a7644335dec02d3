// Package weights tracks an exponential moving average of how often each
// literal occurs across learned clauses, used to order literals from least
// to most important during MIC-style generalization.
package weights

import (
	"sort"

	"github.com/xDarkicex/pdr/formula"
)

// Weights holds one EMA score per literal, keyed densely by
// formula.Literal.Key().
type Weights struct {
	decay  float64
	scores map[uint64]float64
}

// New creates a Weights tracker. decay is the per-update retention factor
// applied to every existing score before the new occurrences are added
// (0 < decay <= 1); a decay near 1 remembers history longer.
func New(decay float64) *Weights {
	return &Weights{decay: decay, scores: make(map[uint64]float64)}
}

// Get returns lit's current score (0 if never seen).
func (w *Weights) Get(lit formula.Literal) float64 {
	return w.scores[lit.Key()]
}

// Bump applies the decay to every tracked literal and then adds 1 to each
// literal in clause. The decay pass rescans the whole score map on every
// call; there is no lazy or merge-walk variant.
func (w *Weights) Bump(clause formula.Clause) {
	w.decayAll()
	for _, l := range clause.Literals() {
		w.scores[l.Key()] += 1.0
	}
}

// BumpCube is Bump's dual for a cube of literals (e.g. a blocked proof
// obligation's state literals).
func (w *Weights) BumpCube(c formula.Cube) {
	w.decayAll()
	for _, l := range c.Literals() {
		w.scores[l.Key()] += 1.0
	}
}

func (w *Weights) decayAll() {
	if w.decay == 1.0 {
		return
	}
	for k, v := range w.scores {
		decayed := v * w.decay
		if decayed < 1e-12 {
			delete(w.scores, k)
			continue
		}
		w.scores[k] = decayed
	}
}

// SortAscending returns a copy of lits ordered from least to most
// important (lowest weight first), the order MIC tries dropping literals
// in: dropping the least-useful literal first maximizes the chance the
// resulting cube stays inductive.
func (w *Weights) SortAscending(lits []formula.Literal) []formula.Literal {
	out := make([]formula.Literal, len(lits))
	copy(out, lits)
	sort.SliceStable(out, func(i, j int) bool {
		return w.Get(out[i]) < w.Get(out[j])
	})
	return out
}

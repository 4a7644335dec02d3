package frame

import "github.com/xDarkicex/pdr/formula"

// Frame owns the delta of clauses learned to hold at this frame (or later)
// plus a hash bumped on every mutation that can change what a SAT query
// against this frame returns. Callers must never append to Delta directly:
// use PushToDeltaAndIncrementHash, or stale solver state and stale
// propagated-fraction bookkeeping will silently desync from the frame's
// actual content.
type Frame struct {
	Delta  []DeltaElement
	hash   uint64
	// propagatedFractions marks, for a given source frame index, how many
	// of that source frame's delta elements (by index) have already been
	// checked for propagation into this frame, so propagation does not
	// redundantly re-test a clause it has already tried to push forward.
	propagatedFractions map[int]int
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{propagatedFractions: make(map[int]int)}
}

// Hash returns the frame's current mutation hash.
func (f *Frame) Hash() uint64 { return f.hash }

// Len returns the number of clauses in the frame's delta.
func (f *Frame) Len() int { return len(f.Delta) }

// PushToDeltaAndIncrementHash is the only sanctioned way to add a clause to
// the frame: it appends the element and bumps the hash so solver pools
// watching this frame know to re-add the clause before their next query.
func (f *Frame) PushToDeltaAndIncrementHash(el DeltaElement) {
	f.Delta = append(f.Delta, el)
	f.hash++
}

// WasFractionAlreadyPropagated reports how many of source's delta elements
// have already been attempted for propagation into f, so the caller can
// skip re-testing them.
func (f *Frame) WasFractionAlreadyPropagated(source int) int {
	return f.propagatedFractions[source]
}

// SetPropagatedFraction records that count elements of source's delta have
// now been attempted for propagation into f.
func (f *Frame) SetPropagatedFraction(source, count int) {
	f.propagatedFractions[source] = count
}

// Clauses returns the frame's clauses as a plain slice, for building a CNF
// or handing to a solver.
func (f *Frame) Clauses() []formula.Clause {
	out := make([]formula.Clause, len(f.Delta))
	for i, d := range f.Delta {
		out[i] = d.Clause
	}
	return out
}

// Remove deletes the delta element at index i, bumping the hash. Used when
// a clause is subsumed by a newly-inserted, more general clause.
func (f *Frame) Remove(i int) {
	f.Delta = append(f.Delta[:i], f.Delta[i+1:]...)
	f.hash++
}

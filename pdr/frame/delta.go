// Package frame implements a single frame of the PDR frame sequence: the
// set of learned clauses known to hold at that frame or later, plus the
// bookkeeping (cone-of-influence, extension-variable relationships, a
// cached decision-diagram node) that makes later queries about those
// clauses cheap.
package frame

import (
	"github.com/xDarkicex/pdr/dd"
	"github.com/xDarkicex/pdr/formula"
)

// DeltaElement is one learned clause together with the metadata PDR
// maintains alongside it: a cached decision-diagram node (lazily built),
// the set of state variables the clause's cone of influence reaches, and
// the set of the clause's variables that have no known extension-variable
// relationship (and therefore cannot benefit from Definition Library
// shortcuts).
type DeltaElement struct {
	Clause               formula.Clause
	node                 dd.Node
	ConeOfInfluenceVars  map[formula.Variable]bool
	StateVarsInCone      map[formula.Variable]bool
	VarsWithoutExtension map[formula.Variable]bool
}

// NewDeltaElement builds a DeltaElement for clause. coneOfInfluence and
// stateVarsInCone may be nil if the cone has not been computed yet.
func NewDeltaElement(clause formula.Clause, coneOfInfluence, stateVarsInCone, varsWithoutExtension map[formula.Variable]bool) DeltaElement {
	return DeltaElement{
		Clause:               clause,
		ConeOfInfluenceVars:  coneOfInfluence,
		StateVarsInCone:      stateVarsInCone,
		VarsWithoutExtension: varsWithoutExtension,
	}
}

// Node returns the element's cached decision-diagram node, building it via
// build if it is not yet cached.
func (d *DeltaElement) Node(build func(formula.Clause) (dd.Node, error)) (dd.Node, error) {
	if d.node != nil {
		return d.node, nil
	}
	n, err := build(d.Clause)
	if err != nil {
		return nil, err
	}
	d.node = n
	return n, nil
}

// InvalidateNode drops the cached node, forcing a rebuild on next use; used
// when the backing decision diagram manager has been reset.
func (d *DeltaElement) InvalidateNode() {
	d.node = nil
}

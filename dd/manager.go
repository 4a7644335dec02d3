// Package dd declares the decision diagram collaborator the definition
// library uses to answer tautology/contradiction/implication queries
// without a SAT call when possible.
package dd

import (
	"errors"

	"github.com/xDarkicex/pdr/formula"
)

// ErrOutOfMemory is returned by Manager operations when the diagram would
// exceed the backend's node budget. It is always recoverable: callers fall
// back to a SAT-based check for the query that triggered it.
var ErrOutOfMemory = errors.New("dd: node budget exceeded")

// Node is an opaque handle into a Manager's unique table.
type Node interface {
	// IsTerminal reports whether the node is the top or bottom constant.
	IsTerminal() bool
}

// Manager builds and queries boolean decision diagrams (BDDs, or another
// canonical representation with the same algebra) over formula.Variable.
type Manager interface {
	Top() Node
	Bot() Node
	Var(v formula.Variable) (Node, error)
	Not(n Node) (Node, error)
	And(a, b Node) (Node, error)
	Or(a, b Node) (Node, error)
	Imp(a, b Node) (Node, error)
	Xor(a, b Node) (Node, error)
	Ite(i, t, e Node) (Node, error)
	// FromClause builds the node representing the disjunction of lits.
	FromClause(c formula.Clause) (Node, error)
	// FromCube builds the node representing the conjunction of lits.
	FromCube(c formula.Cube) (Node, error)
	IsTautology(n Node) (bool, error)
	IsContradiction(n Node) (bool, error)
	Equal(a, b Node) (bool, error)
	// Size reports the current node count, for resource-policy decisions.
	Size() int
}

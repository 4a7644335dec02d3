package definitionlib

import "github.com/xDarkicex/pdr/formula"

// Kind distinguishes the two extension-variable gate shapes the library
// tracks definitions for.
type Kind int

const (
	// KindAnd: v <-> AND(inputs).
	KindAnd Kind = iota
	// KindXor: v <-> XOR(inputs).
	KindXor
)

// Definition records that variable Var is an extension variable standing
// for the AND or XOR of a sorted, duplicate-free list of input literals.
type Definition struct {
	Var    formula.Variable
	Kind   Kind
	Inputs []formula.Literal
}

// equalInputs reports whether a and b name the same literal set.
func equalInputs(a, b []formula.Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

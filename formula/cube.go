package formula

import "strings"

// Cube is a conjunction of literals: the dual of Clause. It most commonly
// represents a (partial) state assignment — the set of variables it fixes,
// and to which polarity.
type Cube struct {
	lits []Literal
}

// NewCube builds a Cube from lits, sorting and deduplicating them the same
// way NewClause does.
func NewCube(lits ...Literal) Cube {
	return Cube{lits: normalize(lits)}
}

// Literals returns the cube's literals in canonical order. Must not be
// mutated.
func (c Cube) Literals() []Literal { return c.lits }

// Len returns the number of literals.
func (c Cube) Len() int { return len(c.lits) }

// IsEmpty reports whether the cube has no literals (the cube representing
// "true", i.e. every state).
func (c Cube) IsEmpty() bool { return len(c.lits) == 0 }

// Contains reports whether lit appears in the cube.
func (c Cube) Contains(lit Literal) bool {
	for _, l := range c.lits {
		if l.Equals(lit) {
			return true
		}
	}
	return false
}

// ContainsVar reports whether the cube fixes v, returning its polarity.
func (c Cube) ContainsVar(v Variable) (negated bool, ok bool) {
	for _, l := range c.lits {
		if l.Var == v {
			return l.Negated, true
		}
	}
	return false, false
}

// Not returns the dual Clause obtained by negating every literal.
func (c Cube) Not() Clause {
	negated := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		negated[i] = l.Not()
	}
	return NewClause(negated...)
}

// Subsumes reports whether c's literal set is a subset of other's: c fixes
// fewer (or the same) variables and is therefore satisfied by a superset of
// the states that satisfy other — the generalization relation used when
// comparing candidate blocking cubes.
func (c Cube) Subsumes(other Cube) bool {
	for _, l := range c.lits {
		if !other.Contains(l) {
			return false
		}
	}
	return true
}

// Restrict returns the sub-cube containing only literals over variables in
// keep.
func (c Cube) Restrict(keep map[Variable]bool) Cube {
	out := make([]Literal, 0, len(c.lits))
	for _, l := range c.lits {
		if keep[l.Var] {
			out = append(out, l)
		}
	}
	return Cube{lits: out}
}

// Without returns the cube with the literal at index i removed, used by MIC
// to test dropping one literal at a time.
func (c Cube) Without(i int) Cube {
	out := make([]Literal, 0, len(c.lits)-1)
	out = append(out, c.lits[:i]...)
	out = append(out, c.lits[i+1:]...)
	return Cube{lits: out}
}

// Equals reports literal-set equality.
func (c Cube) Equals(other Cube) bool {
	if len(c.lits) != len(other.lits) {
		return false
	}
	for i := range c.lits {
		if !c.lits[i].Equals(other.lits[i]) {
			return false
		}
	}
	return true
}

// Bump returns a copy of the cube with every variable offset by delta.
func (c Cube) Bump(delta int32) Cube {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = Literal{Var: Variable(int64(l.Var) + int64(delta)), Negated: l.Negated}
	}
	return Cube{lits: out}
}

// String renders the cube as "(v1 ^ -v2)".
func (c Cube) String() string {
	if c.IsEmpty() {
		return "(true)"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " ^ ") + ")"
}

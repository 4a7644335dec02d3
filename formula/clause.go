package formula

import (
	"sort"
	"strings"
)

// Clause is a disjunction of literals, stored sorted by variable index and
// deduplicated. The zero Clause is the empty clause (false).
type Clause struct {
	lits []Literal
}

// NewClause builds a Clause from lits, sorting and deduplicating them. A
// clause containing both polarities of the same variable is a tautology;
// callers that need to detect this should check IsTautology before use.
func NewClause(lits ...Literal) Clause {
	return Clause{lits: normalize(lits)}
}

func normalize(lits []Literal) []Literal {
	if len(lits) == 0 {
		return nil
	}
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	out := cp[:0]
	for i, l := range cp {
		if i > 0 && l.Equals(cp[i-1]) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Literals returns the clause's literals in canonical order. The returned
// slice must not be mutated.
func (c Clause) Literals() []Literal { return c.lits }

// Len returns the number of literals.
func (c Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether this is the empty (unsatisfiable) clause.
func (c Clause) IsEmpty() bool { return len(c.lits) == 0 }

// IsUnit reports whether the clause has exactly one literal.
func (c Clause) IsUnit() bool { return len(c.lits) == 1 }

// IsTautology reports whether the clause contains a variable and its
// negation, which makes it trivially true.
func (c Clause) IsTautology() bool {
	for i := 1; i < len(c.lits); i++ {
		if c.lits[i].Var == c.lits[i-1].Var {
			return true
		}
	}
	return false
}

// Contains reports whether lit appears in the clause.
func (c Clause) Contains(lit Literal) bool {
	i := sort.Search(len(c.lits), func(i int) bool { return !c.lits[i].Less(lit) })
	return i < len(c.lits) && c.lits[i].Equals(lit)
}

// Not returns the dual Cube obtained by negating every literal, the duality
// used to turn a blocked clause into the cube it excludes and back.
func (c Clause) Not() Cube {
	negated := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		negated[i] = l.Not()
	}
	return NewCube(negated...)
}

// Subsumes reports whether c's literal set is a subset of other's, meaning
// c is at least as general (logically implies satisfaction whenever other
// does, and is learned in preference to it).
func (c Clause) Subsumes(other Clause) bool {
	if len(c.lits) > len(other.lits) {
		return false
	}
	j := 0
	for _, l := range c.lits {
		for j < len(other.lits) && other.lits[j].Less(l) {
			j++
		}
		if j >= len(other.lits) || !other.lits[j].Equals(l) {
			return false
		}
		j++
	}
	return true
}

// Compare orders two clauses canonically: by maximum literal (descending
// precedence as in the original source's clause database ordering), then by
// length, then lexicographically over the sorted literal list. It is used
// to keep delta elements and CNF clause sets in a deterministic order.
func (c Clause) Compare(other Clause) int {
	cmax, omax := c.maxLiteral(), other.maxLiteral()
	if cmax != omax {
		if cmax < omax {
			return -1
		}
		return 1
	}
	if len(c.lits) != len(other.lits) {
		if len(c.lits) < len(other.lits) {
			return -1
		}
		return 1
	}
	for i := range c.lits {
		if c.lits[i].Equals(other.lits[i]) {
			continue
		}
		if c.lits[i].Less(other.lits[i]) {
			return -1
		}
		return 1
	}
	return 0
}

func (c Clause) maxLiteral() uint64 {
	var max uint64
	for _, l := range c.lits {
		if k := l.Key(); k > max {
			max = k
		}
	}
	return max
}

// Equals reports literal-set equality.
func (c Clause) Equals(other Clause) bool {
	return c.Compare(other) == 0
}

// String renders the clause as "(v1 v -v2)".
func (c Clause) String() string {
	if c.IsEmpty() {
		return "(false)"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " v ") + ")"
}

// Bump returns a copy of the clause with every variable offset by delta,
// used to translate a current-state clause into the corresponding
// next-state (or previous-state) clause.
func (c Clause) Bump(delta int32) Clause {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = Literal{Var: Variable(int64(l.Var) + int64(delta)), Negated: l.Negated}
	}
	return Clause{lits: out}
}

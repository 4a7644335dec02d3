package formula

import "sort"

// CNF is an ordered, duplicate-free conjunction of clauses.
type CNF struct {
	clauses []Clause
}

// NewCNF builds a CNF from clauses, sorting and deduplicating them by
// Clause.Compare.
func NewCNF(clauses ...Clause) CNF {
	cp := make([]Clause, len(clauses))
	copy(cp, clauses)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Compare(cp[j]) < 0 })
	out := cp[:0]
	for i, c := range cp {
		if i > 0 && c.Equals(cp[i-1]) {
			continue
		}
		out = append(out, c)
	}
	return CNF{clauses: out}
}

// Clauses returns the CNF's clauses in canonical order. Must not be
// mutated.
func (f CNF) Clauses() []Clause { return f.clauses }

// Len returns the number of clauses.
func (f CNF) Len() int { return len(f.clauses) }

// Append returns a new CNF with extra clauses merged in.
func (f CNF) Append(extra ...Clause) CNF {
	all := make([]Clause, 0, len(f.clauses)+len(extra))
	all = append(all, f.clauses...)
	all = append(all, extra...)
	return NewCNF(all...)
}

// Vars returns the set of variables occurring anywhere in the formula.
func (f CNF) Vars() []Variable {
	seen := make(map[Variable]bool)
	var out []Variable
	for _, c := range f.clauses {
		for _, l := range c.Literals() {
			if !seen[l.Var] {
				seen[l.Var] = true
				out = append(out, l.Var)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

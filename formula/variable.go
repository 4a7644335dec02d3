// Package formula provides the integer-indexed boolean data model shared by
// every layer of the model checker: variables, literals, clauses, cubes and
// CNF formulas. All types are immutable-by-convention value types (slices
// are copied at construction) so they can be shared freely across frames.
package formula

import "fmt"

// Variable identifies a boolean signal by its AIGER-style index. Index 0 is
// reserved and never issued by a real front end.
type Variable uint32

// String renders the variable as "vNNN".
func (v Variable) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}

// Valid reports whether v is a usable, non-reserved index.
func (v Variable) Valid() bool {
	return v != 0
}

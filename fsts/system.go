// Package fsts declares the finite state transition system collaborator
// the PDR engine is built against. Building one — from AIGER/BTOR input,
// after circuit simplification and cone-of-influence reduction — is
// explicitly out of scope for this module; fsts.System is the seam a front
// end plugs into.
package fsts

import (
	"github.com/xDarkicex/pdr/formula"
)

// TrivialResult reports the outcome of a cheap structural pre-check (e.g.
// the property already holds in every initial state, or the transition
// relation is vacuous) that lets the engine skip the proof loop entirely.
type TrivialResult int

const (
	// NotTrivial means no shortcut applies; the engine must run PDR.
	NotTrivial TrivialResult = iota
	// TriviallyHolds means the property holds without search.
	TriviallyHolds
	// TriviallyFails means the property is violated without search.
	TriviallyFails
)

// System is the external view of a finite state transition system that the
// PDR engine consumes. Implementations own the concrete circuit
// representation (AIGER, BTOR2, ...) and the work needed to answer these
// queries; the engine never inspects gates directly.
type System interface {
	// StateVars returns the current-state variables, in a stable order.
	StateVars() []formula.Variable
	// InputVars returns the (primary) input variables.
	InputVars() []formula.Variable
	// Init returns the cube characterizing the initial states.
	Init() formula.Cube
	// Transition returns the current-state/input/next-state transition
	// relation in CNF, using Tag to relate current- and next-state
	// variables.
	Transition() formula.CNF
	// Property returns the cube whose complement the engine must prove
	// invariant (i.e. bad states are the states satisfying Property).
	Property() formula.Cube
	// Constraints returns invariant constraints imposed on every
	// reachable state (current and next), beyond the transition
	// relation itself. A non-empty result that the engine cannot honor
	// yields ErrConstraintsNotSupported from the caller.
	Constraints() formula.Cube
	// Tag returns the variable that plays the role of v delta steps away
	// (delta=0 is current state, delta=1 is next state).
	Tag(v formula.Variable, delta int32) formula.Variable
	// ConeOfInfluence returns the state variables that transitively
	// affect v's next-state value.
	ConeOfInfluence(v formula.Variable) []formula.Variable
	// InternalSignalsFor returns the internal (non-state, non-input)
	// signals in v's immediate definition, used to build extension
	// variable definitions.
	InternalSignalsFor(v formula.Variable) []formula.Variable
	// IsCubeSatisfiedBySomeInitialState reports whether some initial
	// state satisfies c. ok is false if the system cannot answer
	// (falls back to a SAT call by the caller).
	IsCubeSatisfiedBySomeInitialState(c formula.Cube) (sat bool, ok bool)
	// IsClauseSatisfiedByAllInitialStates reports whether every initial
	// state satisfies clause.
	IsClauseSatisfiedByAllInitialStates(clause formula.Clause) (sat bool, ok bool)
	// HasInvariantConstraintsOnInternals reports whether Constraints()
	// references internal signals (not just state/input variables),
	// which the solver pool must assume at every frame if so.
	HasInvariantConstraintsOnInternals() bool
	// MaxVariable returns the largest variable index in use, sized for
	// allocating dense per-variable arrays.
	MaxVariable() formula.Variable
	// TernarySimulate runs ternary simulation from state/input forward
	// one step and reports, of targets, which next-state variables are
	// determined (and to what value) regardless of the don't-care bits
	// left unset in state/input. It is the minimization collaborator
	// used to shrink predecessor and bad cubes.
	TernarySimulate(state, input formula.Cube, targets []formula.Variable) formula.Cube
	// IsTrivial runs cheap structural checks that can resolve the proof
	// without search.
	IsTrivial() (TrivialResult, bool)
}

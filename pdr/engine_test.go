package pdr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/fsts"
	"github.com/xDarkicex/pdr/pdr"
	"github.com/xDarkicex/pdr/satsolver/cdcl"
)

// wrappingCounter is a 2-bit counter (v1 low, v2 high) that increments on
// every step and wraps from 3 back to 0.
type wrappingCounter struct {
	v1, v2 formula.Variable
	bad    bool // if true, property is violated by a reachable state (value 3)
}

func (s *wrappingCounter) StateVars() []formula.Variable { return []formula.Variable{s.v1, s.v2} }
func (s *wrappingCounter) InputVars() []formula.Variable { return nil }

func (s *wrappingCounter) Init() formula.Cube {
	return formula.NewCube(formula.Neg(s.v1), formula.Neg(s.v2))
}

func (s *wrappingCounter) Transition() formula.CNF {
	nv1 := formula.Lit(s.Tag(s.v1, 1), false)
	nv2 := formula.Lit(s.Tag(s.v2, 1), false)
	v1, v2 := formula.Pos(s.v1), formula.Pos(s.v2)

	var cnf formula.CNF
	cnf = cnf.Append(
		formula.NewClause(v1, nv1),
		formula.NewClause(v1.Not(), nv1.Not()),
	)
	cnf = cnf.Append(
		formula.NewClause(v1.Not(), v2.Not(), nv2.Not()),
		formula.NewClause(v1, v2, nv2.Not()),
		formula.NewClause(v1.Not(), v2, nv2),
		formula.NewClause(v1, v2.Not(), nv2),
	)
	return cnf
}

func (s *wrappingCounter) Constraints() formula.Cube { return formula.Cube{} }

func (s *wrappingCounter) Property() formula.Cube {
	if s.bad {
		// Bad states: v1 && v2 (value 3), reachable after 3 steps.
		return formula.NewCube(formula.Pos(s.v1), formula.Pos(s.v2))
	}
	// An unreachable bad state: v1 && !v1, never satisfiable.
	return formula.NewCube(formula.Pos(s.v1), formula.Neg(s.v1))
}

func (s *wrappingCounter) Tag(v formula.Variable, delta int32) formula.Variable {
	if delta == 0 {
		return v
	}
	return v + 100
}

func (s *wrappingCounter) ConeOfInfluence(v formula.Variable) []formula.Variable { return s.StateVars() }
func (s *wrappingCounter) InternalSignalsFor(v formula.Variable) []formula.Variable { return nil }

func (s *wrappingCounter) IsCubeSatisfiedBySomeInitialState(c formula.Cube) (bool, bool) {
	return false, false
}

func (s *wrappingCounter) IsClauseSatisfiedByAllInitialStates(clause formula.Clause) (bool, bool) {
	return false, false
}

func (s *wrappingCounter) HasInvariantConstraintsOnInternals() bool { return false }

func (s *wrappingCounter) MaxVariable() formula.Variable { return s.v2 + 100 }

func (s *wrappingCounter) TernarySimulate(state, input formula.Cube, targets []formula.Variable) formula.Cube {
	return formula.Cube{}
}

func (s *wrappingCounter) IsTrivial() (fsts.TrivialResult, bool) { return fsts.NotTrivial, false }

func newWrappingCounter(bad bool) *wrappingCounter {
	return &wrappingCounter{v1: 1, v2: 2, bad: bad}
}

func TestProveRefutesReachableProperty(t *testing.T) {
	system := newWrappingCounter(true)
	engine, err := pdr.New(system, cdcl.DefaultFactory, nil, pdr.WithMaxDepth(10))
	require.NoError(t, err)

	outcome, err := engine.Prove(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pdr.Refuted, outcome.Result)
	assert.NotEmpty(t, outcome.Counterexample)
}

func TestProveHoldsForUnreachableProperty(t *testing.T) {
	system := newWrappingCounter(false)
	engine, err := pdr.New(system, cdcl.DefaultFactory, nil, pdr.WithMaxDepth(10))
	require.NoError(t, err)

	outcome, err := engine.Prove(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pdr.Holds, outcome.Result)
}

func TestConstraintsOnInternalsRejected(t *testing.T) {
	system := &rejectingSystem{}
	_, err := pdr.New(system, cdcl.DefaultFactory, nil)
	assert.ErrorIs(t, err, pdr.ErrConstraintsNotSupported)
}

type rejectingSystem struct{ wrappingCounter }

func (r *rejectingSystem) HasInvariantConstraintsOnInternals() bool { return true }

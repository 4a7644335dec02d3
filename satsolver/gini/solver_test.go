package gini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/satsolver"
)

func TestSolveSatisfiable(t *testing.T) {
	s := NewSolver(1)
	s.AddClause(formula.Pos(1), formula.Pos(2))

	res, err := s.Solve(context.Background(), nil, formula.Clause{})
	require.NoError(t, err)
	assert.Equal(t, satsolver.Sat, res)
}

func TestSolveUnsatisfiable(t *testing.T) {
	s := NewSolver(1)
	s.AddClause(formula.Pos(1))
	s.AddClause(formula.Neg(1))

	res, err := s.Solve(context.Background(), nil, formula.Clause{})
	require.NoError(t, err)
	assert.Equal(t, satsolver.Unsat, res)
}

func TestSolveWithAssumptions(t *testing.T) {
	s := NewSolver(1)
	s.AddClause(formula.Neg(1), formula.Pos(2)) // v1 -> v2
	s.AddClause(formula.Neg(2))                 // !v2

	res, err := s.Solve(context.Background(), []formula.Literal{formula.Pos(1)}, formula.Clause{})
	require.NoError(t, err)
	assert.Equal(t, satsolver.Unsat, res)
}

func TestScopedConstraintIsTemporary(t *testing.T) {
	s := NewSolver(1)
	s.AddClause(formula.Pos(1), formula.Pos(2))

	// v1 assumed false and v2 forced false by the scoped constraint: Unsat.
	res, err := s.Solve(context.Background(), []formula.Literal{formula.Neg(1)}, formula.NewClause(formula.Neg(2)))
	require.NoError(t, err)
	assert.Equal(t, satsolver.Unsat, res)

	// Same assumption without the constraint: v2 true satisfies it.
	res, err = s.Solve(context.Background(), []formula.Literal{formula.Neg(1)}, formula.Clause{})
	require.NoError(t, err)
	assert.Equal(t, satsolver.Sat, res)
}

func TestValueExtractionAfterSat(t *testing.T) {
	s := NewSolver(1)
	s.AddClause(formula.Pos(1))

	res, err := s.Solve(context.Background(), nil, formula.Clause{})
	require.NoError(t, err)
	require.Equal(t, satsolver.Sat, res)

	val, ok := s.Value(formula.Pos(1))
	require.True(t, ok)
	assert.True(t, val)
}

package definitionlib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/pdr/dd/bdd"
	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/satsolver"
)

type nopSolver struct{}

func (nopSolver) Solve(ctx context.Context, assumptions []formula.Literal, constraint formula.Clause) (satsolver.Result, error) {
	return satsolver.Unknown, nil
}

func TestDefineAndLookup(t *testing.T) {
	lib := New(bdd.New(0))
	lib.Define(10, KindAnd, []formula.Literal{formula.Pos(1), formula.Pos(2)})

	def, ok := lib.Lookup(10)
	require.True(t, ok)
	assert.Equal(t, KindAnd, def.Kind)
	assert.Len(t, def.Inputs, 2)
}

func TestRedefiningWithIdenticalInputsIsNoop(t *testing.T) {
	lib := New(bdd.New(0))
	lib.Define(10, KindAnd, []formula.Literal{formula.Pos(2), formula.Pos(1)})
	lib.Define(10, KindAnd, []formula.Literal{formula.Pos(1), formula.Pos(2)})
	def, _ := lib.Lookup(10)
	assert.Len(t, def.Inputs, 2)
}

func TestClauseWithVariableAndItsNegationIsTautology(t *testing.T) {
	lib := New(bdd.New(0))
	clause := formula.NewClause(formula.Pos(1), formula.Neg(1))

	tauto, err := lib.IsClauseTautology(context.Background(), nopSolver{}, clause)
	require.NoError(t, err)
	assert.True(t, tauto)
}

func TestTautologyAndContradictionShareTheSameAnswer(t *testing.T) {
	// IsClauseContradiction is intentionally wired to the same check as
	// IsClauseTautology (see DESIGN.md); both queries below must therefore
	// agree even though the clause is not actually unsatisfiable.
	lib := New(bdd.New(0))
	clause := formula.NewClause(formula.Pos(1))

	tauto, err := lib.IsClauseTautology(context.Background(), nopSolver{}, clause)
	require.NoError(t, err)
	contra, err := lib.IsClauseContradiction(context.Background(), nopSolver{}, clause)
	require.NoError(t, err)
	assert.Equal(t, tauto, contra)
}

func TestIsClauseImpliedThroughExtensionVariableDefinition(t *testing.T) {
	lib := New(bdd.New(0))
	// v3 <-> v1 AND v2
	lib.Define(3, KindAnd, []formula.Literal{formula.Pos(1), formula.Pos(2)})

	premise := formula.NewCube(formula.Pos(1), formula.Pos(2))
	clause := formula.NewClause(formula.Pos(3))

	implied, err := lib.IsClauseImplied(context.Background(), nopSolver{}, premise, clause)
	require.NoError(t, err)
	assert.True(t, implied)
}

func TestManagerSizeGrowsAsDefinitionsAreUsed(t *testing.T) {
	lib := New(bdd.New(0))
	before := lib.ManagerSize()
	lib.Define(3, KindXor, []formula.Literal{formula.Pos(1), formula.Pos(2)})
	_, err := lib.IsClauseTautology(context.Background(), nopSolver{}, formula.NewClause(formula.Pos(3)))
	require.NoError(t, err)
	assert.Greater(t, lib.ManagerSize(), before)
}

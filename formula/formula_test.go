package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClauseNormalizeSortsAndDedupes(t *testing.T) {
	c := NewClause(Pos(3), Neg(1), Pos(1), Pos(3))
	require.Equal(t, 3, c.Len())
	lits := c.Literals()
	assert.True(t, lits[0].Var == 1 && !lits[0].Negated)
	assert.True(t, lits[1].Var == 1 && lits[1].Negated)
	assert.Equal(t, Variable(3), lits[2].Var)
}

func TestClauseIsTautology(t *testing.T) {
	assert.True(t, NewClause(Pos(2), Neg(2)).IsTautology())
	assert.False(t, NewClause(Pos(2), Pos(3)).IsTautology())
}

func TestClauseCubeDuality(t *testing.T) {
	c := NewClause(Pos(1), Neg(2))
	cube := c.Not()
	require.Equal(t, 2, cube.Len())
	assert.True(t, cube.Contains(Neg(1)))
	assert.True(t, cube.Contains(Pos(2)))
	assert.True(t, cube.Not().Equals(c))
}

func TestClauseSubsumes(t *testing.T) {
	small := NewClause(Pos(1))
	big := NewClause(Pos(1), Pos(2))
	assert.True(t, small.Subsumes(big))
	assert.False(t, big.Subsumes(small))
}

func TestCubeSubsumesAndWithout(t *testing.T) {
	cube := NewCube(Pos(1), Neg(2), Pos(3))
	smaller := NewCube(Pos(1), Pos(3))
	assert.True(t, smaller.Subsumes(cube))
	assert.False(t, cube.Subsumes(smaller))

	dropped := cube.Without(1)
	require.Equal(t, 2, dropped.Len())
	assert.False(t, dropped.Contains(Neg(2)))
}

func TestCubeRestrict(t *testing.T) {
	cube := NewCube(Pos(1), Neg(2), Pos(3))
	keep := map[Variable]bool{1: true, 3: true}
	restricted := cube.Restrict(keep)
	require.Equal(t, 2, restricted.Len())
	assert.True(t, restricted.Contains(Pos(1)))
	assert.True(t, restricted.Contains(Pos(3)))
}

func TestCNFAppendDedupes(t *testing.T) {
	base := NewCNF(NewClause(Pos(1), Pos(2)))
	merged := base.Append(NewClause(Pos(1), Pos(2)), NewClause(Pos(3)))
	assert.Equal(t, 2, merged.Len())
}

func TestCNFVars(t *testing.T) {
	cnf := NewCNF(NewClause(Pos(5), Neg(2)), NewClause(Pos(2), Pos(7)))
	vars := cnf.Vars()
	assert.Equal(t, []Variable{2, 5, 7}, vars)
}

func TestLiteralNotAndEquals(t *testing.T) {
	lit := Pos(4)
	assert.True(t, lit.Not().Equals(Neg(4)))
	assert.False(t, lit.Equals(Neg(4)))
}

func TestBumpShiftsVariables(t *testing.T) {
	clause := NewClause(Pos(1), Neg(2))
	bumped := clause.Bump(10)
	for _, l := range bumped.Literals() {
		assert.GreaterOrEqual(t, uint32(l.Var), uint32(10))
	}
}

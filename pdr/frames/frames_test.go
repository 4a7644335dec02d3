package frames_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/pdr/definitionlib"
	"github.com/xDarkicex/pdr/dd/bdd"
	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/fsts"
	"github.com/xDarkicex/pdr/pdr/frames"
	"github.com/xDarkicex/pdr/pdr/solverpool"
	"github.com/xDarkicex/pdr/satsolver/cdcl"
	"github.com/xDarkicex/pdr/weights"
)

// shiftSystem is a two-bit system where v1 latches (next(v1) = v1) and v2
// shadows v1 one step later (next(v2) = v1). Proving !v2 invariant this way
// genuinely needs !v1 to already be known: !v2 alone is not self-inductive
// (a state with v1 true and v2 false transitions to v2 true), but becomes
// inductive once !v1 is assumed.
type shiftSystem struct{ v1, v2 formula.Variable }

func (s *shiftSystem) StateVars() []formula.Variable { return []formula.Variable{s.v1, s.v2} }
func (s *shiftSystem) InputVars() []formula.Variable { return nil }
func (s *shiftSystem) Init() formula.Cube {
	return formula.NewCube(formula.Neg(s.v1), formula.Neg(s.v2))
}

func (s *shiftSystem) Transition() formula.CNF {
	nv1 := formula.Lit(s.Tag(s.v1, 1), false)
	nv2 := formula.Lit(s.Tag(s.v2, 1), false)
	v1 := formula.Pos(s.v1)

	var cnf formula.CNF
	cnf = cnf.Append(
		formula.NewClause(v1.Not(), nv1),
		formula.NewClause(v1, nv1.Not()),
	)
	cnf = cnf.Append(
		formula.NewClause(v1.Not(), nv2),
		formula.NewClause(v1, nv2.Not()),
	)
	return cnf
}

func (s *shiftSystem) Constraints() formula.Cube { return formula.Cube{} }
func (s *shiftSystem) Property() formula.Cube    { return formula.NewCube(formula.Pos(s.v2)) }
func (s *shiftSystem) Tag(v formula.Variable, delta int32) formula.Variable {
	if delta == 0 {
		return v
	}
	return v + 100
}
func (s *shiftSystem) ConeOfInfluence(v formula.Variable) []formula.Variable    { return s.StateVars() }
func (s *shiftSystem) InternalSignalsFor(v formula.Variable) []formula.Variable { return nil }
func (s *shiftSystem) IsCubeSatisfiedBySomeInitialState(c formula.Cube) (bool, bool) {
	return false, false
}
func (s *shiftSystem) IsClauseSatisfiedByAllInitialStates(clause formula.Clause) (bool, bool) {
	return false, false
}
func (s *shiftSystem) HasInvariantConstraintsOnInternals() bool { return false }
func (s *shiftSystem) MaxVariable() formula.Variable            { return s.v2 + 100 }
func (s *shiftSystem) TernarySimulate(state, input formula.Cube, targets []formula.Variable) formula.Cube {
	return formula.Cube{}
}
func (s *shiftSystem) IsTrivial() (fsts.TrivialResult, bool) { return fsts.NotTrivial, false }

// TestPropagateRemovesClauseFromSourceFrame verifies the frame sequence
// invariant that a clause lives in exactly the highest frame whose delta
// contains it. !v2 is placed at F1 where it cannot yet propagate (nothing
// establishes !v1 yet); !v1 is then placed at F2. Once both are known,
// Propagate must discover !v2 is now inductive relative to F2, move it
// there (and beyond, into F_inf, since it is then inductive everywhere),
// remove it from F1's delta, and report F1 empty as a fixed point.
func TestPropagateRemovesClauseFromSourceFrame(t *testing.T) {
	system := &shiftSystem{v1: 1, v2: 2}
	pool := solverpool.New(system, cdcl.DefaultFactory, 1)
	defLib := definitionlib.New(bdd.New(1 << 16))
	w := weights.New(0.99)

	f := frames.New(system, pool, defLib, w, frames.Params{})
	f.NewFrontier() // finite now holds F1, F2

	ctx := context.Background()
	require.NoError(t, f.AddClauseToFrameAtLeast(ctx, 1, formula.NewClause(formula.Neg(system.v2))))
	require.NoError(t, f.AddClauseToFrameAtLeast(ctx, 2, formula.NewClause(formula.Neg(system.v1))))

	fixedPoint, ok, err := f.Propagate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, fixedPoint)
}

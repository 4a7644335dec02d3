package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xDarkicex/pdr/dd"
	"github.com/xDarkicex/pdr/formula"
)

func TestNewFrameIsEmpty(t *testing.T) {
	f := NewFrame()
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, uint64(0), f.Hash())
}

func TestPushIncrementsHashAndAppends(t *testing.T) {
	f := NewFrame()
	el := NewDeltaElement(formula.NewClause(formula.Pos(1)), nil, nil, nil)
	f.PushToDeltaAndIncrementHash(el)
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, uint64(1), f.Hash())

	f.PushToDeltaAndIncrementHash(el)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, uint64(2), f.Hash())
}

func TestRemoveBumpsHashAndShrinks(t *testing.T) {
	f := NewFrame()
	f.PushToDeltaAndIncrementHash(NewDeltaElement(formula.NewClause(formula.Pos(1)), nil, nil, nil))
	f.PushToDeltaAndIncrementHash(NewDeltaElement(formula.NewClause(formula.Pos(2)), nil, nil, nil))
	hashBefore := f.Hash()

	f.Remove(0)
	assert.Equal(t, 1, f.Len())
	assert.Greater(t, f.Hash(), hashBefore)
	assert.True(t, f.Clauses()[0].Equals(formula.NewClause(formula.Pos(2))))
}

func TestPropagatedFractionBookkeeping(t *testing.T) {
	f := NewFrame()
	assert.Equal(t, 0, f.WasFractionAlreadyPropagated(2))
	f.SetPropagatedFraction(2, 5)
	assert.Equal(t, 5, f.WasFractionAlreadyPropagated(2))
	// unrelated source frame is unaffected.
	assert.Equal(t, 0, f.WasFractionAlreadyPropagated(3))
}

func TestDeltaElementNodeIsCachedAfterFirstBuild(t *testing.T) {
	el := NewDeltaElement(formula.NewClause(formula.Pos(1)), nil, nil, nil)
	calls := 0
	build := func(c formula.Clause) (dd.Node, error) {
		calls++
		return fakeNode{}, nil
	}
	_, err := el.Node(build)
	assert.NoError(t, err)
	_, err = el.Node(build)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls, "second call should reuse the cached node")
}

type fakeNode struct{}

func (fakeNode) IsTerminal() bool { return true }

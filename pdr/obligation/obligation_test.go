package obligation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/pdr/formula"
)

func TestQueuePopsLowestFrameFirst(t *testing.T) {
	q := New()
	q.Push(3, 0)
	q.Push(1, 1)
	q.Push(2, 2)

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, first.Frame)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, second.Frame)

	third, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, third.Frame)
}

func TestQueueBreaksTiesByInsertionOrder(t *testing.T) {
	q := New()
	q.Push(1, 10) // pushed first
	q.Push(1, 20) // pushed second, same frame

	first, _ := q.Pop()
	second, _ := q.Pop()
	assert.Equal(t, 10, first.CubeID)
	assert.Equal(t, 20, second.CubeID)
}

func TestQueueEmptyAfterDraining(t *testing.T) {
	q := New()
	assert.True(t, q.Empty())
	q.Push(0, 0)
	assert.False(t, q.Empty())
	_, ok := q.Pop()
	require.True(t, ok)
	assert.True(t, q.Empty())
	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestTraceTreeDeduplicatesIdenticalStates(t *testing.T) {
	tree := NewTraceTree()
	state := formula.NewCube(formula.Pos(1))
	id1 := tree.Insert(state, formula.Cube{}, -1)
	id2 := tree.Insert(state, formula.Cube{}, -1)
	assert.Equal(t, id1, id2)
}

func TestTraceTreeCounterexampleWalksSuccessorChain(t *testing.T) {
	tree := NewTraceTree()
	violation := tree.Insert(formula.NewCube(formula.Pos(3)), formula.Cube{}, -1)
	mid := tree.Insert(formula.NewCube(formula.Pos(2)), formula.Cube{}, violation)
	start := tree.Insert(formula.NewCube(formula.Pos(1)), formula.Cube{}, mid)

	path := tree.Counterexample(start)
	require.Len(t, path, 3)
	assert.True(t, path[0].State.Equals(formula.NewCube(formula.Pos(1))))
	assert.True(t, path[1].State.Equals(formula.NewCube(formula.Pos(2))))
	assert.True(t, path[2].State.Equals(formula.NewCube(formula.Pos(3))))
}

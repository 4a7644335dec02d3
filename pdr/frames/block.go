package frames

import (
	"context"

	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/pdr/obligation"
)

// RecursivelyBlockCube tries to prove badCube unreachable at startFrame by
// repeatedly chasing predecessors backward through the frame sequence,
// blocking (and generalizing) each one it can, until either every
// obligation is resolved (badCube is unreachable: true, nil) or a
// predecessor is found at frame 0 (badCube is reachable: false, the
// counterexample path). input is the witnessing input cube that drives the
// transition out of badCube (as returned alongside badCube by
// Frames.BadCubeAt), recorded on the root trace-tree node so the final
// counterexample step carries the input that actually produces the
// violation instead of an unconstrained empty cube. The proof obligations
// queue and trace tree are local to this call: a fresh search starts clean
// each time the top-level engine loop asks whether the property still
// holds at the current depth.
func (f *Frames) RecursivelyBlockCube(ctx context.Context, startFrame int, badCube, input formula.Cube) (blocked bool, cex []obligation.Step, err error) {
	queue := obligation.New()
	tree := obligation.NewTraceTree()
	root := tree.Insert(badCube, input, -1)
	queue.Push(startFrame, root)

	for !queue.Empty() {
		if err := ctx.Err(); err != nil {
			return false, nil, err
		}
		ob, _ := queue.Peek()
		if ob.Frame == 0 {
			return false, tree.Counterexample(ob.CubeID), nil
		}
		cube := tree.State(ob.CubeID)

		alreadyBlocked, err := f.pool.SolveIsCubeBlocked(ctx, ob.Frame, f.clausesAtAndAbove(ob.Frame), f.combinedHash(ob.Frame), cube)
		if err != nil {
			return false, nil, err
		}
		if alreadyBlocked {
			queue.Pop()
			continue
		}

		state, input, blockingClause, found, err := f.noPredecessorOfCube(ctx, ob.Frame-1, cube)
		if err != nil {
			return false, nil, err
		}
		if found {
			childID := tree.Insert(state, input, ob.CubeID)
			queue.Push(ob.Frame-1, childID)
			continue
		}

		queue.Pop()
		generalized, err := f.Generalize(ctx, ob.Frame-1, blockingClause.Not())
		if err != nil {
			return false, nil, err
		}
		if err := f.AddClauseToFrameAtLeast(ctx, ob.Frame, generalized.Not()); err != nil {
			return false, nil, err
		}
		f.weights.BumpCube(generalized)
		if ob.Frame <= f.Depth() {
			queue.Push(ob.Frame+1, ob.CubeID)
		}
	}
	return true, nil, nil
}

// noPredecessorOfCube asks the solver pool whether frame i has a
// state/input pair that transitions into cube. found is true with state
// and input populated when one exists; otherwise blockingClause is the
// clause (over cube's negated literals) learned from the failed
// assumptions, ready to generalize and insert.
func (f *Frames) noPredecessorOfCube(ctx context.Context, i int, cube formula.Cube) (state, input formula.Cube, blockingClause formula.Clause, found bool, err error) {
	if i < 0 {
		i = 0
	}
	if i == 0 {
		// F0 carries only Init, never any learned clauses.
		state, input, blockingClause, found, err = f.pool.GetPredecessorOfCube(ctx, 0, nil, 0, cube)
		return
	}
	state, input, blockingClause, found, err = f.pool.GetPredecessorOfCube(ctx, i, f.clausesAtAndAbove(i), f.combinedHash(i), cube)
	return
}

// Package frames implements the PDR frame sequence: F_0 (always the
// initial states, never stored as an explicit delta), F_1..F_D (the
// growing, provable frontier) and F_inf (clauses known to be inductive
// forever, propagated to but never dropped from). It owns insertion,
// MIC/MIC+CTG generalization, propagation (including into F_inf) and the
// recursive-block search that drives one call to Engine.Prove.
package frames

import (
	"context"

	"github.com/xDarkicex/pdr/definitionlib"
	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/fsts"
	"github.com/xDarkicex/pdr/pdr/frame"
	"github.com/xDarkicex/pdr/pdr/solverpool"
	"github.com/xDarkicex/pdr/weights"
)

// Params bundles the subset of engine configuration the frames sequence
// needs, kept separate from the full engine Config so this package does
// not import it.
type Params struct {
	UseInfiniteFrame     bool
	PropagationLimit     int // 0 means unlimited
	GeneralizeUsingCTG    bool
	MaxCTGDepth          int
	MaxCTGCount          int
}

// Frames is the full frame sequence plus its collaborators.
type Frames struct {
	system fsts.System
	pool   *solverpool.Pool
	defLib *definitionlib.Library
	weights *weights.Weights
	params Params

	finite []*frame.Frame // finite[0] is F_1 (F_0 is implicit: the initial states)
	inf    *frame.Frame   // F_inf
}

// New creates a Frames sequence with an empty F_1 and F_inf.
func New(system fsts.System, pool *solverpool.Pool, defLib *definitionlib.Library, w *weights.Weights, params Params) *Frames {
	f := &Frames{system: system, pool: pool, defLib: defLib, weights: w, params: params, inf: frame.NewFrame()}
	f.finite = append(f.finite, frame.NewFrame())
	return f
}

// Depth returns D, the index of the last finite frame (F_1..F_D).
func (f *Frames) Depth() int { return len(f.finite) }

// NewFrontier appends a fresh, empty frame, extending the depth by one.
func (f *Frames) NewFrontier() {
	f.finite = append(f.finite, frame.NewFrame())
}

// frameAt returns the finite frame at 1-based index i, or the F_inf frame
// if i is beyond the finite sequence (i.e. treated as F_inf).
func (f *Frames) frameAt(i int) *frame.Frame {
	if i >= 1 && i <= len(f.finite) {
		return f.finite[i-1]
	}
	return f.inf
}

// clausesAtAndAbove returns the clauses that hold at frame i or later: the
// union of Fi, F(i+1), ..., FD, F_inf, since a clause proved at an earlier
// frame holds at every later one.
func (f *Frames) clausesAtAndAbove(i int) []formula.Clause {
	var out []formula.Clause
	if i < 1 {
		i = 1
	}
	for idx := i; idx <= len(f.finite); idx++ {
		out = append(out, f.finite[idx-1].Clauses()...)
	}
	out = append(out, f.inf.Clauses()...)
	return out
}

// combinedHash folds together the mutation hashes of every frame from i
// upward, giving the solver pool a single value to detect "nothing changed
// since last sync" against.
func (f *Frames) combinedHash(i int) uint64 {
	var h uint64
	if i < 1 {
		i = 1
	}
	for idx := i; idx <= len(f.finite); idx++ {
		h = h*1000003 + f.finite[idx-1].Hash()
	}
	h = h*1000003 + f.inf.Hash()
	return h
}

// BadCubeAt asks whether the property's bad region is reachable at frame i
// given everything currently known at i and above, returning a witnessing
// state/input cube pair on Sat.
func (f *Frames) BadCubeAt(ctx context.Context, i int, bad formula.Cube) (state, input formula.Cube, ok bool, err error) {
	return f.pool.GetBadCube(ctx, i, f.clausesAtAndAbove(i), f.combinedHash(i), bad)
}

// AddClauseToFrameAtLeast inserts clause so that it holds at frame i and
// every frame above it, then walks upward while the clause remains
// inductive relative to each next frame, finally depositing it in F_inf
// when it is inductive relative to every finite frame (matching the
// original's add_clause_to_frame_at_least: insertion always finds the
// highest frame the clause is actually good for, not just frame i).
func (f *Frames) AddClauseToFrameAtLeast(ctx context.Context, i int, clause formula.Clause) error {
	f.removeSubsumed(i, clause)
	target := i
	for target <= len(f.finite) {
		guaranteed, err := f.pool.IsClauseGuaranteedAfterTransitionIfAssumed(
			ctx, target, f.clausesAtAndAbove(target), f.combinedHash(target), formula.Cube{}, clause)
		if err != nil {
			return err
		}
		if !guaranteed {
			break
		}
		target++
	}
	if target > len(f.finite) {
		f.inf.PushToDeltaAndIncrementHash(frame.NewDeltaElement(clause, nil, nil, nil))
		return nil
	}
	f.finite[target-1].PushToDeltaAndIncrementHash(frame.NewDeltaElement(clause, nil, nil, nil))
	return nil
}

// removeSubsumed drops any existing clause at frame i or above that is
// subsumed by the newly inserted clause, keeping each frame's delta free
// of redundant, more specific clauses.
func (f *Frames) removeSubsumed(i int, clause formula.Clause) {
	for idx := i; idx <= len(f.finite); idx++ {
		fr := f.finite[idx-1]
		for j := 0; j < fr.Len(); {
			if !fr.Delta[j].Clause.Equals(clause) && clause.Subsumes(fr.Delta[j].Clause) {
				fr.Remove(j)
				continue
			}
			j++
		}
	}
}

// IsInitial reports whether cube intersects the initial states, preferring
// the system's structural answer and falling back to a frame-0 SAT query
// (assuming cube's literals together with Init()) when the system cannot
// answer directly.
func (f *Frames) IsInitial(ctx context.Context, cube formula.Cube) (bool, error) {
	if sat, ok := f.system.IsCubeSatisfiedBySomeInitialState(cube); ok {
		return sat, nil
	}
	combined := append(append([]formula.Literal(nil), cube.Literals()...), f.system.Init().Literals()...)
	blocked, err := f.pool.SolveIsCubeBlocked(ctx, 0, nil, 0, formula.NewCube(combined...))
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

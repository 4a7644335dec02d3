package frames

import (
	"context"

	"github.com/xDarkicex/pdr/formula"
)

// Generalize takes a cube known to be blocked relative to frame i (no state
// of Fi steps into it: Fi ^ T ^ cube' is unsatisfiable) and greedily drops
// literals to make it a smaller, more general blocking clause. A drop is kept
// when the smaller cube contains no initial state and Fi ^ T ^ candidate' is
// still unsatisfiable; the candidate's own clause is not assumed in that
// check, so it is stricter than relative induction. It tries the least-weighted
// literal first (weights.SortAscending) since that literal is least likely
// to be needed to keep the cube inductive. When GeneralizeUsingCTG is set,
// a literal whose removal breaks inductiveness is not simply kept: the
// counterexample to generalization it produces is itself recursively
// blocked, up to MaxCTGDepth/MaxCTGCount, before retrying the drop.
func (f *Frames) Generalize(ctx context.Context, i int, cube formula.Cube) (formula.Cube, error) {
	ordered := f.weights.SortAscending(cube.Literals())
	current := formula.NewCube(ordered...)
	ctgCount := 0
	for idx := 0; idx < current.Len(); {
		lit := current.Literals()[idx]
		candidate := current.Without(idx)
		if candidate.IsEmpty() {
			idx++
			continue
		}
		isInitial, err := f.IsInitial(ctx, candidate)
		if err != nil {
			return formula.Cube{}, err
		}
		if isInitial {
			idx++
			continue
		}
		guaranteed, err := f.pool.IsClauseGuaranteedAfterTransitionIfAssumed(
			ctx, i, f.clausesAtAndAbove(i), f.combinedHash(i), formula.Cube{}, candidate.Not())
		if err != nil {
			return formula.Cube{}, err
		}
		if guaranteed {
			current = candidate
			continue // re-examine this index: the slice shifted under us
		}
		if f.params.GeneralizeUsingCTG && ctgCount < f.params.MaxCTGCount {
			blocked, err := f.generalizeWithCTG(ctx, i, candidate, f.params.MaxCTGDepth)
			if err != nil {
				return formula.Cube{}, err
			}
			ctgCount++
			if blocked {
				current = candidate
				continue
			}
		}
		_ = lit
		idx++
	}
	return current, nil
}

// generalizeWithCTG tries to inductively block the counterexample-to-
// generalization candidate itself, at frame i-1, so that dropping the
// literal that produced it becomes safe after all. depth bounds the
// recursion the same way the engine's recursive block loop is depth
// bounded, preventing CTG elimination from spiraling.
func (f *Frames) generalizeWithCTG(ctx context.Context, i int, candidate formula.Cube, depth int) (bool, error) {
	if depth <= 0 || i <= 1 {
		return false, nil
	}
	isInitial, err := f.IsInitial(ctx, candidate)
	if err != nil {
		return false, err
	}
	if isInitial {
		return false, nil
	}
	blocked, err := f.pool.SolveIsCubeBlocked(ctx, i-1, f.clausesAtAndAbove(i-1), f.combinedHash(i-1), candidate)
	if err != nil {
		return false, err
	}
	if blocked {
		generalized, err := f.Generalize(ctx, i-1, candidate)
		if err != nil {
			return false, err
		}
		if err := f.AddClauseToFrameAtLeast(ctx, i-1, generalized.Not()); err != nil {
			return false, err
		}
		return true, nil
	}
	state, _, blockingClause, ok, err := f.pool.GetPredecessorOfCube(ctx, i-1, f.clausesAtAndAbove(i-1), f.combinedHash(i-1), candidate)
	if err != nil {
		return false, err
	}
	if ok {
		return f.generalizeWithCTG(ctx, i-1, state, depth-1)
	}
	if err := f.AddClauseToFrameAtLeast(ctx, i-1, blockingClause); err != nil {
		return false, err
	}
	return true, nil
}

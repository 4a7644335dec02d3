package frames

import (
	"context"

	"github.com/xDarkicex/pdr/formula"
)

// Propagate pushes each finite frame's clauses forward into the next
// frame wherever they remain inductive there, up to params.PropagationLimit
// clauses per frame per call (0 means unlimited), and reports the index of
// the first frame that became empty after propagation (a fixed point: if
// Fi and F(i+1) end up with the same clause set, the proof is done at
// depth i). ok is false if no fixed point was reached this call.
func (f *Frames) Propagate(ctx context.Context) (fixedPoint int, ok bool, err error) {
	for i := 1; i < len(f.finite); i++ {
		if err := f.propagateFrame(ctx, i); err != nil {
			return 0, false, err
		}
	}
	if f.params.UseInfiniteFrame {
		if err := f.propagateIntoInfinite(ctx); err != nil {
			return 0, false, err
		}
	}
	for i := 1; i < len(f.finite); i++ {
		if f.finite[i-1].Len() == 0 {
			return i, true, nil
		}
	}
	return 0, false, nil
}

// propagateFrame tries to push each not-yet-attempted clause of frame i
// into frame i+1, skipping the leading clauses that frame i+1's
// WasFractionAlreadyPropagated record for source i counts as already
// tried. The record is not reset when the frames change, so a clause that
// failed to propagate once is not tried again by later calls.
func (f *Frames) propagateFrame(ctx context.Context, i int) error {
	src, dst := f.finite[i-1], f.finite[i]
	already := dst.WasFractionAlreadyPropagated(i)
	limit := src.Len()
	if f.params.PropagationLimit > 0 && already+f.params.PropagationLimit < limit {
		limit = already + f.params.PropagationLimit
	}
	var propagated []int
	for idx := already; idx < limit; idx++ {
		clause := src.Delta[idx].Clause
		guaranteed, err := f.pool.IsClauseGuaranteedAfterTransitionIfAssumed(
			ctx, i, f.clausesAtAndAbove(i), f.combinedHash(i), formula.Cube{}, clause)
		if err != nil {
			return err
		}
		if guaranteed {
			if err := f.AddClauseToFrameAtLeast(ctx, i+1, clause); err != nil {
				return err
			}
			propagated = append(propagated, idx)
		}
	}
	// A clause that propagated forward now holds at i+1 and everywhere
	// above, so its home (the highest frame whose delta contains it) is no
	// longer src: drop it here too, keeping the frame-sequence invariant
	// that a clause lives in exactly one frame's delta. Remove
	// highest-index first so earlier indices in propagated stay valid.
	for j := len(propagated) - 1; j >= 0; j-- {
		src.Remove(propagated[j])
	}
	dst.SetPropagatedFraction(i, limit-len(propagated))
	return nil
}

// propagateIntoInfinite tries every finite frame's clauses against F_inf:
// a clause that is inductive relative to F_inf itself (ignoring the finite
// frames entirely) can be moved there permanently, shrinking the finite
// frames that still need checking on future calls.
func (f *Frames) propagateIntoInfinite(ctx context.Context) error {
	for idx := len(f.finite) - 1; idx >= 0; idx-- {
		fr := f.finite[idx]
		for j := 0; j < fr.Len(); j++ {
			clause := fr.Delta[j].Clause
			guaranteed, err := f.pool.IsClauseGuaranteedAfterTransitionIfAssumed(
				ctx, idx+1, f.inf.Clauses(), f.inf.Hash(), formula.Cube{}, clause)
			if err != nil {
				return err
			}
			if guaranteed {
				f.inf.PushToDeltaAndIncrementHash(fr.Delta[j])
			}
		}
	}
	return nil
}

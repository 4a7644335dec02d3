// Package pdr implements Property Directed Reachability (IC3): proving an
// invariant holds on every state reachable from a finite state transition
// system's initial states, or producing a counterexample path showing it
// does not.
package pdr

import (
	"context"
	"fmt"

	"github.com/xDarkicex/pdr/dd"
	"github.com/xDarkicex/pdr/dd/bdd"
	"github.com/xDarkicex/pdr/definitionlib"
	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/fsts"
	"github.com/xDarkicex/pdr/pdr/frames"
	"github.com/xDarkicex/pdr/pdr/obligation"
	"github.com/xDarkicex/pdr/pdr/solverpool"
	"github.com/xDarkicex/pdr/satsolver"
	"github.com/xDarkicex/pdr/satsolver/cdcl"
	"github.com/xDarkicex/pdr/weights"
)

// Result classifies a finished (or abandoned) proof attempt.
type Result int

const (
	// Holds means the property was proved invariant.
	Holds Result = iota
	// Refuted means a reachable state violates the property.
	Refuted
)

// Outcome is the result of a completed Engine.Prove call.
type Outcome struct {
	Result          Result
	Counterexample  []obligation.Step // non-nil only when Result == Refuted
	Depth           int               // frame depth at which the proof concluded
}

// Engine is one configured PDR proof attempt against a single system.
type Engine struct {
	system  fsts.System
	cfg     Config
	pool    *solverpool.Pool
	defLib  *definitionlib.Library
	weights *weights.Weights
	frames  *frames.Frames
	stats   Stats
}

// New wires up an Engine's collaborators: a solver pool backed by factory
// (defaulting to the package's reference CDCL backend via DefaultFactory
// when factory is nil), a decision diagram manager (defaulting to the
// in-module bdd.Manager when manager is nil), the definition library, the
// variable weight tracker, and the frame sequence, in that dependency
// order.
func New(system fsts.System, factory satsolver.Factory, manager dd.Manager, opts ...Option) (*Engine, error) {
	if system.HasInvariantConstraintsOnInternals() {
		return nil, ErrConstraintsNotSupported
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if factory == nil {
		factory = cdcl.DefaultFactory
	}
	if manager == nil {
		manager = bdd.New(0)
	}
	pool := solverpool.New(system, factory, cfg.Seed)
	defLib := definitionlib.New(manager)
	w := weights.New(cfg.Decay)
	fr := frames.New(system, pool, defLib, w, frames.Params{
		UseInfiniteFrame:   cfg.UseInfiniteFrame,
		PropagationLimit:   cfg.PropagationLimit,
		GeneralizeUsingCTG: cfg.GeneralizeUsingCTG,
		MaxCTGDepth:        cfg.MaxCTGDepth,
		MaxCTGCount:        cfg.MaxCTGCount,
	})
	return &Engine{system: system, cfg: cfg, pool: pool, defLib: defLib, weights: w, frames: fr}, nil
}

// Stats returns a snapshot of the engine's diagnostic counters.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Solver = e.pool.Stats()
	return s
}

// Prove runs the PDR main loop to completion, an inconclusive *ProofError,
// or ctx's cancellation. It is not safe to call Prove twice concurrently on
// the same Engine; it is safe to call it again sequentially, continuing
// from whatever frame sequence state the previous call reached.
func (e *Engine) Prove(ctx context.Context) (Outcome, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	if trivial, ok := e.system.IsTrivial(); ok {
		switch trivial {
		case fsts.TriviallyHolds:
			return Outcome{Result: Holds}, nil
		case fsts.TriviallyFails:
			return Outcome{Result: Refuted}, nil
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return Outcome{}, &ProofError{Op: "prove", Kind: TimeOutReached}
		}
		if e.cfg.MaxDepth > 0 && e.frames.Depth() > e.cfg.MaxDepth {
			return Outcome{}, &ProofError{Op: "prove", Kind: MaxDepthReached}
		}

		e.printProgress("round depth=%d", e.frames.Depth())

		advanced, outcome, err := e.strengthenCurrentFrame(ctx)
		if err != nil {
			return Outcome{}, err
		}
		if outcome != nil {
			return *outcome, nil
		}
		if advanced {
			continue
		}

		e.frames.NewFrontier()
		e.stats.FramesOpened++
		e.stats.PropagationRounds++
		if _, fixed, err := e.frames.Propagate(ctx); err != nil {
			return Outcome{}, err
		} else if fixed {
			return Outcome{Result: Holds, Depth: e.frames.Depth()}, nil
		}
	}
}

// strengthenCurrentFrame looks for a bad cube reachable at the current
// depth and, if one exists, tries to block it. advanced is true if a cube
// was found and successfully blocked (the caller should retry at the same
// depth before opening a new frame); outcome is non-nil once the proof has
// concluded (a counterexample was found).
func (e *Engine) strengthenCurrentFrame(ctx context.Context) (advanced bool, outcome *Outcome, err error) {
	depth := e.frames.Depth()
	bad := e.system.Property()
	state, input, ok, err := e.frames.BadCubeAt(ctx, depth, bad)
	if err != nil {
		return false, nil, err
	}
	if !ok {
		return false, nil, nil
	}
	minimized := e.minimizeWithTernarySim(state)
	e.stats.ProofObligations++
	blocked, cex, err := e.frames.RecursivelyBlockCube(ctx, depth, minimized, input)
	if err != nil {
		return false, nil, err
	}
	if !blocked {
		return false, &Outcome{Result: Refuted, Counterexample: cex, Depth: depth}, nil
	}
	e.stats.ClausesLearned++
	return true, nil, nil
}

// minimizeWithTernarySim asks the system to ternary-simulate state forward
// and drops any literal the simulation shows was never needed to reach the
// bad region, shrinking the cube before it enters the recursive block
// search.
func (e *Engine) minimizeWithTernarySim(state formula.Cube) formula.Cube {
	targets := e.system.StateVars()
	minimized := e.system.TernarySimulate(state, formula.Cube{}, targets)
	if minimized.Len() == 0 || minimized.Len() > state.Len() {
		return state
	}
	return minimized
}

func (e *Engine) printProgress(format string, args ...any) {
	if !e.cfg.Verbose {
		return
	}
	fmt.Fprintf(e.cfg.Output, format+"\n", args...)
}

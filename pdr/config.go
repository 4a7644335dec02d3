package pdr

import (
	"io"
	"time"
)

// Config bundles every tunable parameter the original exposes through its
// command-line parameters module, built through functional Options the
// same way the pack's operator-lifecycle-manager solver package builds a
// Solver through WithInput/WithTracer.
type Config struct {
	Seed    uint64
	Timeout time.Duration // 0 means no timeout
	MaxDepth int           // 0 means unlimited

	Decay float64 // variable weight EMA decay, 0 < Decay <= 1

	GeneralizeUsingCTG bool
	MaxCTGDepth        int
	MaxCTGCount        int

	UseInfiniteFrame  bool
	PropagationLimit  int

	Verbose                      bool
	ShouldPrintClausesWhenAdded  bool
	ShouldPrintFramesEachRound   bool
	ShouldPrintStatsAtEnd        bool

	Output io.Writer
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns the engine's baseline configuration: no timeout, no
// depth bound, CTG generalization enabled with modest bounds, the infinite
// frame disabled (matching the original's dead-code-gated default), and
// all printing suppressed.
func DefaultConfig() Config {
	return Config{
		Seed:               0,
		Decay:              0.99,
		GeneralizeUsingCTG: true,
		MaxCTGDepth:        1,
		MaxCTGCount:        3,
		UseInfiniteFrame:   false,
		PropagationLimit:   0,
		Output:             io.Discard,
	}
}

// WithSeed fixes the pseudo-random seed used for solver construction and
// any randomized decision heuristics.
func WithSeed(seed uint64) Option { return func(c *Config) { c.Seed = seed } }

// WithTimeout bounds total proof time; a zero duration means no bound.
func WithTimeout(d time.Duration) Option { return func(c *Config) { c.Timeout = d } }

// WithMaxDepth bounds how many frames the engine will open; zero means
// unbounded.
func WithMaxDepth(d int) Option { return func(c *Config) { c.MaxDepth = d } }

// WithDecay sets the variable weight EMA decay factor.
func WithDecay(decay float64) Option { return func(c *Config) { c.Decay = decay } }

// WithCTG enables MIC+CTG generalization with the given depth and count
// bounds.
func WithCTG(maxDepth, maxCount int) Option {
	return func(c *Config) {
		c.GeneralizeUsingCTG = true
		c.MaxCTGDepth = maxDepth
		c.MaxCTGCount = maxCount
	}
}

// WithoutCTG disables CTG-based generalization, leaving plain MIC.
func WithoutCTG() Option { return func(c *Config) { c.GeneralizeUsingCTG = false } }

// WithInfiniteFrame enables propagating clauses into F_inf, bounding how
// many clauses are attempted per finite frame per propagation round
// (0 means unlimited).
func WithInfiniteFrame(propagationLimit int) Option {
	return func(c *Config) {
		c.UseInfiniteFrame = true
		c.PropagationLimit = propagationLimit
	}
}

// WithVerbose turns on progress printing to Output.
func WithVerbose(w io.Writer) Option {
	return func(c *Config) {
		c.Verbose = true
		if w != nil {
			c.Output = w
		}
	}
}

// WithPrintClausesWhenAdded sets Config.ShouldPrintClausesWhenAdded. The
// engine does not read this flag, so no per-clause output is printed.
func WithPrintClausesWhenAdded() Option {
	return func(c *Config) { c.ShouldPrintClausesWhenAdded = true }
}

// WithPrintFramesEachRound sets Config.ShouldPrintFramesEachRound. The
// engine does not read this flag, so no frame sizes are printed.
func WithPrintFramesEachRound() Option {
	return func(c *Config) { c.ShouldPrintFramesEachRound = true }
}

// WithPrintStatsAtEnd sets Config.ShouldPrintStatsAtEnd. The engine does
// not read this flag, so no statistics are printed at the end.
func WithPrintStatsAtEnd() Option {
	return func(c *Config) { c.ShouldPrintStatsAtEnd = true }
}

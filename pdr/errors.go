package pdr

import (
	"errors"
	"fmt"
)

// ErrConstraintsNotSupported is returned at construction time when the
// system declares invariant constraints on internal signals that this
// configuration cannot honor.
var ErrConstraintsNotSupported = errors.New("pdr: constraints on internal signals are not supported by this configuration")

// ErrorKind distinguishes the two inconclusive proof outcomes from a fatal
// one: both MaxDepthReached and TimeOutReached mean the search was
// abandoned, not that the property was refuted or proved.
type ErrorKind int

const (
	// MaxDepthReached means Config.MaxDepth frames were opened without
	// reaching a fixed point or a counterexample.
	MaxDepthReached ErrorKind = iota
	// TimeOutReached means Config.Timeout (or the caller's context)
	// elapsed before the proof concluded.
	TimeOutReached
)

func (k ErrorKind) String() string {
	switch k {
	case MaxDepthReached:
		return "max depth reached"
	case TimeOutReached:
		return "timeout reached"
	default:
		return "unknown"
	}
}

// ProofError reports an inconclusive proof outcome. It carries the Op that
// was in progress (e.g. "prove") for diagnostics.
type ProofError struct {
	Op   string
	Kind ErrorKind
}

func (e *ProofError) Error() string {
	return fmt.Sprintf("pdr: %s: %s", e.Op, e.Kind)
}

// Is lets errors.Is match by Kind regardless of Op:
// errors.Is(err, &pdr.ProofError{Kind: pdr.MaxDepthReached}) holds for any
// *ProofError with that Kind, comparing kinds, not just pointers.
func (e *ProofError) Is(target error) bool {
	other, ok := target.(*ProofError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

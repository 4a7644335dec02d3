package obligation

import "github.com/xDarkicex/pdr/formula"

// traceNode is one arena entry: a state cube reached while trying to
// reach the bad states, the input cube that was asserted to reach it, and
// the index of the node that is its successor on the path toward the
// property violation (or -1 if this node is the violation itself). Using
// indices instead of pointers keeps the tree an acyclic, append-only arena
// with no reference cycles to collect.
type traceNode struct {
	state     formula.Cube
	input     formula.Cube
	successor int
}

// TraceTree is an append-only arena of states encountered while blocking
// proof obligations, decoupled from the obligation Queue so multiple
// obligations can reference the same state without duplicating it. Nodes
// are deduplicated by state-cube equality: inserting an already-known state
// returns its existing id instead of creating a new node.
type TraceTree struct {
	nodes []traceNode
}

// NewTraceTree creates an empty tree.
func NewTraceTree() *TraceTree {
	return &TraceTree{}
}

// Insert records that state was reached via input, with successor as the
// next node toward the violation (-1 if state itself violates the
// property), returning its id. If an identical state cube is already
// present, its existing id is returned instead of adding a duplicate node.
func (t *TraceTree) Insert(state, input formula.Cube, successor int) int {
	for i, n := range t.nodes {
		if n.state.Equals(state) {
			return i
		}
	}
	t.nodes = append(t.nodes, traceNode{state: state, input: input, successor: successor})
	return len(t.nodes) - 1
}

// State returns the state cube stored at id.
func (t *TraceTree) State(id int) formula.Cube { return t.nodes[id].state }

// Counterexample walks the successor chain starting at id until it reaches
// a node with no successor, collecting the (state, input) pair at each
// step in path order (from id toward the violation).
func (t *TraceTree) Counterexample(id int) []Step {
	var out []Step
	for id >= 0 {
		n := t.nodes[id]
		out = append(out, Step{State: n.state, Input: n.input})
		if n.successor == id {
			break // defensive: a self-loop ends the walk instead of looping forever
		}
		id = n.successor
	}
	return out
}

// Step is one (state, input) pair on an extracted counterexample path.
type Step struct {
	State formula.Cube
	Input formula.Cube
}

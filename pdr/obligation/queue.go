// Package obligation implements the proof obligation priority queue and
// the trace tree used to reconstruct a counterexample once a bad cube is
// proven reachable at frame 0.
package obligation

import "container/heap"

// Obligation is a cube that must be blocked at Frame before the proof can
// continue: the engine believes Cube (identified by CubeID, an index into
// the trace tree) is reachable and intersects a later frame's bad region.
type Obligation struct {
	Frame      int
	Priority   int // insertion order: lower values were queued first (FIFO among equal frames)
	CubeID     int
}

// Queue is a priority queue of Obligations ordered by frame ascending, then
// insertion order ascending, then cube id ascending — the order the
// original engine processes proof obligations in, so obligations at the
// lowest frame (closest to the initial states) are handled first, and ties
// are broken deterministically.
type Queue struct {
	items    obligationHeap
	nextSeq  int
}

// New creates an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Push inserts an obligation to block cubeID at frame, stamping it with the
// next insertion sequence number.
func (q *Queue) Push(frame, cubeID int) {
	heap.Push(&q.items, Obligation{Frame: frame, Priority: q.nextSeq, CubeID: cubeID})
	q.nextSeq++
}

// Pop removes and returns the highest-priority obligation (lowest frame
// first). ok is false if the queue is empty.
func (q *Queue) Pop() (Obligation, bool) {
	if q.items.Len() == 0 {
		return Obligation{}, false
	}
	return heap.Pop(&q.items).(Obligation), true
}

// Peek returns the highest-priority obligation without removing it.
func (q *Queue) Peek() (Obligation, bool) {
	if q.items.Len() == 0 {
		return Obligation{}, false
	}
	return q.items[0], true
}

// Len returns the number of queued obligations.
func (q *Queue) Len() int { return q.items.Len() }

// Empty reports whether the queue has no obligations.
func (q *Queue) Empty() bool { return q.items.Len() == 0 }

type obligationHeap []Obligation

func (h obligationHeap) Len() int { return len(h) }

func (h obligationHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Frame != b.Frame {
		return a.Frame < b.Frame
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.CubeID < b.CubeID
}

func (h obligationHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *obligationHeap) Push(x any) {
	*h = append(*h, x.(Obligation))
}

func (h *obligationHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

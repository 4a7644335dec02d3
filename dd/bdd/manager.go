// Package bdd is a minimal reduced-ordered binary decision diagram manager.
// No third-party BDD/ZDD library appears anywhere in the example pack, so
// this is a small stdlib-only implementation of dd.Manager, justified in
// DESIGN.md: it exists purely so the definition library has a concrete,
// in-module backend to exercise end to end.
package bdd

import (
	"github.com/xDarkicex/pdr/dd"
	"github.com/xDarkicex/pdr/formula"
)

// ref is the internal node id. 0 and 1 are the reserved terminal ids.
type ref int32

const (
	botRef ref = 0
	topRef ref = 1
)

// node is a non-terminal node value stored in Manager.nodes.
type node struct {
	v      formula.Variable
	lo, hi ref
}

// Manager is a unique-table BDD manager ordered by increasing
// formula.Variable value. It is not safe for concurrent use; callers share
// the single-threaded discipline the rest of the engine relies on.
type Manager struct {
	nodes     []node          // nodes[0], nodes[1] unused placeholders for terminals
	unique    map[node]ref    // hash-consing table
	andCache  map[[2]ref]ref
	orCache   map[[2]ref]ref
	notCache  map[ref]ref
	maxNodes  int
}

// New creates a Manager. maxNodes bounds the unique table size; once
// exceeded, operations return dd.ErrOutOfMemory instead of growing further.
// A maxNodes of 0 means unbounded.
func New(maxNodes int) *Manager {
	return &Manager{
		nodes:    make([]node, 2, 1024),
		unique:   make(map[node]ref, 1024),
		andCache: make(map[[2]ref]ref),
		orCache:  make(map[[2]ref]ref),
		notCache: make(map[ref]ref),
		maxNodes: maxNodes,
	}
}

func (m *Manager) Top() dd.Node { return nodeHandle{m: m, r: topRef} }
func (m *Manager) Bot() dd.Node { return nodeHandle{m: m, r: botRef} }

func (m *Manager) Size() int { return len(m.nodes) }

func (m *Manager) mk(v formula.Variable, lo, hi ref) (ref, error) {
	if lo == hi {
		return lo, nil
	}
	key := node{v: v, lo: lo, hi: hi}
	if r, ok := m.unique[key]; ok {
		return r, nil
	}
	if m.maxNodes > 0 && len(m.nodes) >= m.maxNodes {
		return 0, dd.ErrOutOfMemory
	}
	r := ref(len(m.nodes))
	m.nodes = append(m.nodes, key)
	m.unique[key] = r
	return r, nil
}

func (m *Manager) Var(v formula.Variable) (dd.Node, error) {
	r, err := m.mk(v, botRef, topRef)
	if err != nil {
		return nil, err
	}
	return nodeHandle{m: m, r: r}, nil
}

func (m *Manager) unwrap(n dd.Node) ref {
	return n.(nodeHandle).r
}

func (m *Manager) Not(n dd.Node) (dd.Node, error) {
	r, err := m.not(m.unwrap(n))
	if err != nil {
		return nil, err
	}
	return nodeHandle{m: m, r: r}, nil
}

func (m *Manager) not(a ref) (ref, error) {
	if a == botRef {
		return topRef, nil
	}
	if a == topRef {
		return botRef, nil
	}
	if r, ok := m.notCache[a]; ok {
		return r, nil
	}
	nd := m.nodes[a]
	lo, err := m.not(nd.lo)
	if err != nil {
		return 0, err
	}
	hi, err := m.not(nd.hi)
	if err != nil {
		return 0, err
	}
	r, err := m.mk(nd.v, lo, hi)
	if err != nil {
		return 0, err
	}
	m.notCache[a] = r
	return r, nil
}

func (m *Manager) And(a, b dd.Node) (dd.Node, error) {
	r, err := m.and(m.unwrap(a), m.unwrap(b))
	if err != nil {
		return nil, err
	}
	return nodeHandle{m: m, r: r}, nil
}

func (m *Manager) and(a, b ref) (ref, error) {
	if a == botRef || b == botRef {
		return botRef, nil
	}
	if a == topRef {
		return b, nil
	}
	if b == topRef || a == b {
		return a, nil
	}
	if a > b {
		a, b = b, a
	}
	key := [2]ref{a, b}
	if r, ok := m.andCache[key]; ok {
		return r, nil
	}
	na, nb := m.nodes[a], m.nodes[b]
	var v formula.Variable
	var aLo, aHi, bLo, bHi ref
	switch {
	case !m.isTerminal(a) && (m.isTerminal(b) || na.v < nb.v):
		v, aLo, aHi, bLo, bHi = na.v, na.lo, na.hi, b, b
	case !m.isTerminal(b) && (m.isTerminal(a) || nb.v < na.v):
		v, aLo, aHi, bLo, bHi = nb.v, a, a, nb.lo, nb.hi
	default:
		v, aLo, aHi, bLo, bHi = na.v, na.lo, na.hi, nb.lo, nb.hi
	}
	lo, err := m.and(aLo, bLo)
	if err != nil {
		return 0, err
	}
	hi, err := m.and(aHi, bHi)
	if err != nil {
		return 0, err
	}
	r, err := m.mk(v, lo, hi)
	if err != nil {
		return 0, err
	}
	m.andCache[key] = r
	return r, nil
}

func (m *Manager) isTerminal(r ref) bool { return r == botRef || r == topRef }

func (m *Manager) Or(a, b dd.Node) (dd.Node, error) {
	na, err := m.not(m.unwrap(a))
	if err != nil {
		return nil, err
	}
	nb, err := m.not(m.unwrap(b))
	if err != nil {
		return nil, err
	}
	r, err := m.and(na, nb)
	if err != nil {
		return nil, err
	}
	r, err = m.not(r)
	if err != nil {
		return nil, err
	}
	return nodeHandle{m: m, r: r}, nil
}

func (m *Manager) Imp(a, b dd.Node) (dd.Node, error) {
	na, err := m.Not(a)
	if err != nil {
		return nil, err
	}
	return m.Or(na, b)
}

func (m *Manager) Xor(a, b dd.Node) (dd.Node, error) {
	nb, err := m.Not(b)
	if err != nil {
		return nil, err
	}
	return m.Iff(a, nb) // Xor(a,b) == Iff(a, not b)
}

// Iff builds the node for a <-> b.
func (m *Manager) Iff(a, b dd.Node) (dd.Node, error) {
	imp1, err := m.Imp(a, b)
	if err != nil {
		return nil, err
	}
	imp2, err := m.Imp(b, a)
	if err != nil {
		return nil, err
	}
	return m.And(imp1, imp2)
}

func (m *Manager) Ite(i, t, e dd.Node) (dd.Node, error) {
	it, err := m.And(i, t)
	if err != nil {
		return nil, err
	}
	ni, err := m.Not(i)
	if err != nil {
		return nil, err
	}
	ie, err := m.And(ni, e)
	if err != nil {
		return nil, err
	}
	return m.Or(it, ie)
}

func (m *Manager) FromClause(c formula.Clause) (dd.Node, error) {
	acc := m.Bot()
	for _, l := range c.Literals() {
		lit, err := m.literal(l)
		if err != nil {
			return nil, err
		}
		acc, err = m.Or(acc, lit)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (m *Manager) FromCube(c formula.Cube) (dd.Node, error) {
	acc := m.Top()
	for _, l := range c.Literals() {
		lit, err := m.literal(l)
		if err != nil {
			return nil, err
		}
		var err2 error
		acc, err2 = m.And(acc, lit)
		if err2 != nil {
			return nil, err2
		}
	}
	return acc, nil
}

func (m *Manager) literal(l formula.Literal) (dd.Node, error) {
	v, err := m.Var(l.Var)
	if err != nil {
		return nil, err
	}
	if l.Negated {
		return m.Not(v)
	}
	return v, nil
}

func (m *Manager) IsTautology(n dd.Node) (bool, error) {
	return m.unwrap(n) == topRef, nil
}

func (m *Manager) IsContradiction(n dd.Node) (bool, error) {
	return m.unwrap(n) == botRef, nil
}

func (m *Manager) Equal(a, b dd.Node) (bool, error) {
	return m.unwrap(a) == m.unwrap(b), nil
}

type nodeHandle struct {
	m *Manager
	r ref
}

func (h nodeHandle) IsTerminal() bool { return h.r == botRef || h.r == topRef }

var _ dd.Manager = (*Manager)(nil)

// Package definitionlib tracks extension-variable definitions (AND/XOR
// gates introduced over internal signals) and answers tautology,
// contradiction and implication queries about clauses over those
// variables, trying a decision diagram first and falling back to SAT.
package definitionlib

import (
	"sort"

	"github.com/xDarkicex/pdr/dd"
	"github.com/xDarkicex/pdr/formula"
)

// Library owns the extension-variable definitions discovered so far plus a
// decision diagram manager used to answer queries about them cheaply. It
// is not safe for concurrent use, matching the engine's single-threaded
// model.
type Library struct {
	manager     dd.Manager
	definitions map[formula.Variable]Definition
	nodes       map[formula.Variable]dd.Node // cached node for each definition's body
}

// New creates an empty Library backed by manager.
func New(manager dd.Manager) *Library {
	return &Library{
		manager:     manager,
		definitions: make(map[formula.Variable]Definition),
		nodes:       make(map[formula.Variable]dd.Node),
	}
}

// Define records that v is an extension variable for kind(inputs),
// replacing any prior definition for v. inputs is sorted and deduplicated.
func (l *Library) Define(v formula.Variable, kind Kind, inputs []formula.Literal) {
	cp := append([]formula.Literal(nil), inputs...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	deduped := cp[:0]
	for i, in := range cp {
		if i > 0 && in.Equals(cp[i-1]) {
			continue
		}
		deduped = append(deduped, in)
	}
	def := Definition{Var: v, Kind: kind, Inputs: deduped}
	if existing, ok := l.definitions[v]; ok && existing.Kind == def.Kind && equalInputs(existing.Inputs, def.Inputs) {
		return
	}
	l.definitions[v] = def
	delete(l.nodes, v)
}

// Lookup returns v's definition, if any.
func (l *Library) Lookup(v formula.Variable) (Definition, bool) {
	d, ok := l.definitions[v]
	return d, ok
}

// bodyNode returns (building and caching if needed) the decision-diagram
// node for v's definition body (the gate's output formula in terms of its
// inputs), or ok=false if v has no definition.
func (l *Library) bodyNode(v formula.Variable) (dd.Node, bool, error) {
	def, ok := l.definitions[v]
	if !ok {
		return nil, false, nil
	}
	if n, cached := l.nodes[v]; cached {
		return n, true, nil
	}
	var acc dd.Node
	var err error
	switch def.Kind {
	case KindAnd:
		acc = l.manager.Top()
		for _, in := range def.Inputs {
			lit, e := l.literalNode(in)
			if e != nil {
				return nil, false, e
			}
			acc, err = l.manager.And(acc, lit)
			if err != nil {
				return nil, false, err
			}
		}
	case KindXor:
		acc = l.manager.Bot()
		for _, in := range def.Inputs {
			lit, e := l.literalNode(in)
			if e != nil {
				return nil, false, e
			}
			acc, err = l.manager.Xor(acc, lit)
			if err != nil {
				return nil, false, err
			}
		}
	}
	l.nodes[v] = acc
	return acc, true, nil
}

func (l *Library) literalNode(lit formula.Literal) (dd.Node, error) {
	n, err := l.manager.Var(lit.Var)
	if err != nil {
		return nil, err
	}
	if lit.Negated {
		return l.manager.Not(n)
	}
	return n, nil
}

// nodeForLiteral returns the node representing lit, substituting its
// definition body when lit's variable is an extension variable so that
// queries see through the gate instead of treating it as a free variable.
func (l *Library) nodeForLiteral(lit formula.Literal) (dd.Node, error) {
	if body, ok, err := l.bodyNode(lit.Var); err != nil {
		return nil, err
	} else if ok {
		if lit.Negated {
			return l.manager.Not(body)
		}
		return body, nil
	}
	return l.literalNode(lit)
}

// nodeForClause builds the decision-diagram node for a clause, expanding
// any extension variables it mentions through their definitions.
func (l *Library) nodeForClause(c formula.Clause) (dd.Node, error) {
	acc := l.manager.Bot()
	for _, lit := range c.Literals() {
		n, err := l.nodeForLiteral(lit)
		if err != nil {
			return nil, err
		}
		var err2 error
		acc, err2 = l.manager.Or(acc, n)
		if err2 != nil {
			return nil, err2
		}
	}
	return acc, nil
}

// nodeForCube builds the decision-diagram node for a cube, expanding any
// extension variables it mentions through their definitions.
func (l *Library) nodeForCube(c formula.Cube) (dd.Node, error) {
	acc := l.manager.Top()
	for _, lit := range c.Literals() {
		n, err := l.nodeForLiteral(lit)
		if err != nil {
			return nil, err
		}
		var err2 error
		acc, err2 = l.manager.And(acc, n)
		if err2 != nil {
			return nil, err2
		}
	}
	return acc, nil
}

// ManagerSize exposes the backing manager's node count for resource-policy
// decisions (e.g. rebuilding the library once it grows too large).
func (l *Library) ManagerSize() int { return l.manager.Size() }

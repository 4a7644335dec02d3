// Package main demonstrates end-to-end usage of the pdr package: building a
// tiny finite state transition system and running the engine against it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xDarkicex/pdr/formula"
	"github.com/xDarkicex/pdr/fsts"
	"github.com/xDarkicex/pdr/pdr"
	"github.com/xDarkicex/pdr/satsolver/cdcl"
)

// counterSystem is a 2-bit counter that increments on every step and wraps
// from 3 back to 0. StateVars are v1 (low bit) and v2 (high bit); there are
// no inputs. The property asserted is "the counter never reaches 3", which
// is false (a reachable state violates it), so Prove returns Refuted with a
// three-step counterexample (counter values 0, 1 and 2; the step out of 2
// reaches 3).
type counterSystem struct {
	v1, v2 formula.Variable
}

func newCounterSystem() *counterSystem {
	return &counterSystem{v1: 1, v2: 2}
}

func (s *counterSystem) StateVars() []formula.Variable { return []formula.Variable{s.v1, s.v2} }
func (s *counterSystem) InputVars() []formula.Variable { return nil }

func (s *counterSystem) Init() formula.Cube {
	return formula.NewCube(formula.Neg(s.v1), formula.Neg(s.v2))
}

func (s *counterSystem) Transition() formula.CNF {
	// next(v1) = !v1, next(v2) = v1 XOR v2 -- standard ripple counter logic,
	// encoded as Tseitin clauses over next-state variables tagged at depth 1.
	nv1 := formula.Lit(s.Tag(s.v1, 1), false)
	nv2 := formula.Lit(s.Tag(s.v2, 1), false)
	v1, v2 := formula.Pos(s.v1), formula.Pos(s.v2)

	var cnf formula.CNF
	// next(v1) <-> !v1
	cnf = cnf.Append(
		formula.NewClause(v1, nv1),
		formula.NewClause(v1.Not(), nv1.Not()),
	)
	// next(v2) <-> v1 XOR v2
	cnf = cnf.Append(
		formula.NewClause(v1.Not(), v2.Not(), nv2.Not()),
		formula.NewClause(v1, v2, nv2.Not()),
		formula.NewClause(v1.Not(), v2, nv2),
		formula.NewClause(v1, v2.Not(), nv2),
	)
	return cnf
}

func (s *counterSystem) Constraints() formula.Cube { return formula.Cube{} }

func (s *counterSystem) Property() formula.Cube {
	// Bad states: v1 && v2 (value 3).
	return formula.NewCube(formula.Pos(s.v1), formula.Pos(s.v2))
}

func (s *counterSystem) Tag(v formula.Variable, delta int32) formula.Variable {
	if delta == 0 {
		return v
	}
	return v + 100 // simple disjoint next-state numbering for this toy system
}

func (s *counterSystem) ConeOfInfluence(v formula.Variable) []formula.Variable {
	return s.StateVars()
}

func (s *counterSystem) InternalSignalsFor(v formula.Variable) []formula.Variable { return nil }

func (s *counterSystem) IsCubeSatisfiedBySomeInitialState(c formula.Cube) (bool, bool) {
	return false, false
}

func (s *counterSystem) IsClauseSatisfiedByAllInitialStates(clause formula.Clause) (bool, bool) {
	return false, false
}

func (s *counterSystem) HasInvariantConstraintsOnInternals() bool { return false }

func (s *counterSystem) MaxVariable() formula.Variable { return s.v2 + 100 }

func (s *counterSystem) TernarySimulate(state, input formula.Cube, targets []formula.Variable) formula.Cube {
	return formula.Cube{} // no simplification offered
}

func (s *counterSystem) IsTrivial() (fsts.TrivialResult, bool) { return fsts.NotTrivial, false }

func main() {
	system := newCounterSystem()
	engine, err := pdr.New(system, cdcl.DefaultFactory, nil, pdr.WithVerbose(os.Stdout))
	if err != nil {
		fmt.Println("setup error:", err)
		return
	}

	outcome, err := engine.Prove(context.Background())
	if err != nil {
		fmt.Println("proof error:", err)
		return
	}

	switch outcome.Result {
	case pdr.Holds:
		fmt.Println("property holds at depth", outcome.Depth)
	case pdr.Refuted:
		fmt.Println("property refuted, counterexample length:", len(outcome.Counterexample))
	}
	fmt.Println(engine.Stats())
}

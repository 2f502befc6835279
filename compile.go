package binarypuzzle

import (
	"github.com/Luycia/binary-puzzle/constraint"
	"github.com/Luycia/binary-puzzle/logger"
)

// Compile encodes the counting rules of g as a pseudo-boolean feasibility
// model with one binary variable per cell, id row·n+col.
//
// The model holds, in order: one equality per fixed cell, the n/2 parity
// equality for every row then every column, the 1..2 occupancy bounds for
// every three-cell window in rows then columns, and one excluding cut per
// entry of cuts. Row and column distinctness is not encoded; callers filter
// assignments with Solution.CheckDistinct.
//
// Compile panics if a cut's size differs from the grid's.
func Compile(g *Grid, cuts ...*Solution) *constraint.Model {
	n := g.Size()
	half := n / 2

	nbWindows := 0
	if n > 2 {
		nbWindows = 2 * n * (n - 2)
	}
	m := constraint.NewModel(n*n, g.NbFixed()+2*n+2*nbWindows+len(cuts))

	for _, fc := range g.Fixed() {
		m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: uint32(fc.Row*n + fc.Col)}}, int(fc.Value))
	}

	for r := 0; r < n; r++ {
		l := make(constraint.LinearExpression, n)
		for c := 0; c < n; c++ {
			l[c] = constraint.Term{Coeff: 1, Var: uint32(r*n + c)}
		}
		m.AddEq(l, half)
	}
	for c := 0; c < n; c++ {
		l := make(constraint.LinearExpression, n)
		for r := 0; r < n; r++ {
			l[r] = constraint.Term{Coeff: 1, Var: uint32(r*n + c)}
		}
		m.AddEq(l, half)
	}

	// every run of three consecutive cells holds at least one 0 and one 1
	for r := 0; r < n; r++ {
		for c := 0; c+2 < n; c++ {
			l := constraint.LinearExpression{
				{Coeff: 1, Var: uint32(r*n + c)},
				{Coeff: 1, Var: uint32(r*n + c + 1)},
				{Coeff: 1, Var: uint32(r*n + c + 2)},
			}
			m.AddAtLeast(l, 1)
			m.AddAtMost(l.Clone(), 2)
		}
	}
	for c := 0; c < n; c++ {
		for r := 0; r+2 < n; r++ {
			l := constraint.LinearExpression{
				{Coeff: 1, Var: uint32(r*n + c)},
				{Coeff: 1, Var: uint32((r+1)*n + c)},
				{Coeff: 1, Var: uint32((r+2)*n + c)},
			}
			m.AddAtLeast(l, 1)
			m.AddAtMost(l.Clone(), 2)
		}
	}

	for _, cut := range cuts {
		m.AddConstraint(excludeCut(cut, n))
	}

	log := logger.Logger()
	log.Debug().
		Int("nbVars", m.NbVars).
		Int("nbConstraints", m.NbConstraints()).
		Int("nbCuts", len(cuts)).
		Msg("compiled model")

	return m
}

// excludeCut builds the no-good cut forbidding exactly the assignment s:
// the sum of the one-cell variables minus the sum of the zero-cell variables
// stays at most n*n-1-z, z the number of zero cells. Every other assignment
// satisfies the bound.
func excludeCut(s *Solution, n int) constraint.Linear {
	if s.Size() != n {
		panic("cut size does not match grid size")
	}
	l := make(constraint.LinearExpression, 0, n*n)
	zeros := 0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if s.At(r, c) == 1 {
				l = append(l, constraint.Term{Coeff: 1, Var: uint32(r*n + c)})
			} else {
				l = append(l, constraint.Term{Coeff: -1, Var: uint32(r*n + c)})
				zeros++
			}
		}
	}
	return constraint.Linear{L: l, Sense: constraint.AtMost, K: n*n - 1 - zeros}
}

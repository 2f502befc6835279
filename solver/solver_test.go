package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Luycia/binary-puzzle/constraint"
)

func TestGophersatFeasible(t *testing.T) {
	assert := require.New(t)

	// x0 + x1 = 1 and x0 - x1 >= 0 admit exactly x0=1, x1=0
	m := constraint.NewModel(2, 2)
	m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: 0}, {Coeff: 1, Var: 1}}, 1)
	m.AddAtLeast(constraint.LinearExpression{{Coeff: 1, Var: 0}, {Coeff: -1, Var: 1}}, 0)

	assignment, err := NewGophersat().Solve(m)
	assert.NoError(err)
	assert.Equal([]bool{true, false}, assignment)
}

func TestGophersatInfeasible(t *testing.T) {
	assert := require.New(t)

	m := constraint.NewModel(1, 2)
	m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: 0}}, 1)
	m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: 0}}, 0)

	_, err := NewGophersat().Solve(m)
	assert.ErrorIs(err, ErrInfeasible)
}

func TestGophersatNegativeCoefficients(t *testing.T) {
	assert := require.New(t)

	// x0 - x1 = 0 together with x0 + x1 = 2 forces both variables to 1
	m := constraint.NewModel(2, 2)
	m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: 0}, {Coeff: -1, Var: 1}}, 0)
	m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: 0}, {Coeff: 1, Var: 1}}, 2)

	assignment, err := NewGophersat().Solve(m)
	assert.NoError(err)
	assert.Equal([]bool{true, true}, assignment)
}

func TestGophersatSatisfiesModel(t *testing.T) {
	assert := require.New(t)

	// a row of four cells with two ones and no three consecutive equal cells
	m := constraint.NewModel(4, 5)
	m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: 0}, {Coeff: 1, Var: 1}, {Coeff: 1, Var: 2}, {Coeff: 1, Var: 3}}, 2)
	for _, w := range [][]uint32{{0, 1, 2}, {1, 2, 3}} {
		l := constraint.LinearExpression{{Coeff: 1, Var: w[0]}, {Coeff: 1, Var: w[1]}, {Coeff: 1, Var: w[2]}}
		m.AddAtLeast(l.Clone(), 1)
		m.AddAtMost(l, 2)
	}

	assignment, err := NewGophersat().Solve(m)
	assert.NoError(err)
	assert.True(m.Satisfied(assignment))
}

func TestGophersatUnconstrainedVariable(t *testing.T) {
	assert := require.New(t)

	// x2 appears in no constraint; the assignment must still cover it
	m := constraint.NewModel(3, 1)
	m.AddEq(constraint.LinearExpression{{Coeff: 1, Var: 0}}, 1)

	assignment, err := NewGophersat().Solve(m)
	assert.NoError(err)
	assert.Len(assignment, 3)
	assert.True(assignment[0])
}

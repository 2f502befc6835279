package binarypuzzle_test

import (
	"errors"
	"testing"

	binarypuzzle "github.com/Luycia/binary-puzzle"
	"github.com/Luycia/binary-puzzle/constraint"
	"github.com/Luycia/binary-puzzle/test"
)

func TestSolveAllBatch(t *testing.T) {
	assert := test.NewAssert(t)

	unique := grid8x8(assert)
	ambiguous, err := binarypuzzle.New(2)
	assert.NoError(err)
	contradictory, err := binarypuzzle.New(4)
	assert.NoError(err)
	for c := 0; c < 4; c++ {
		assert.NoError(contradictory.Fix(0, c, 1))
	}

	results, err := binarypuzzle.SolveAllBatch([]*binarypuzzle.Grid{unique, ambiguous, contradictory}, 2)
	assert.NoError(err)
	assert.Len(results, 3)

	assert.Len(results[0], 1)
	want, err := binarypuzzle.SolutionFromRows(solution8x8)
	assert.NoError(err)
	assert.True(want.Equal(results[0][0]))

	assert.Len(results[1], 2)
	assert.Empty(results[2])
}

func TestSolveAllBatchNoLimit(t *testing.T) {
	assert := test.NewAssert(t)

	grids := make([]*binarypuzzle.Grid, 4)
	for i := range grids {
		g, err := binarypuzzle.New(2)
		assert.NoError(err)
		grids[i] = g
	}

	results, err := binarypuzzle.SolveAllBatch(grids, 0)
	assert.NoError(err)
	assert.Len(results, 4)
	for _, sols := range results {
		assert.Len(sols, 2)
	}
}

type failOracle struct{}

func (failOracle) Solve(*constraint.Model) ([]bool, error) {
	return nil, errors.New("boom")
}

func TestSolveAllBatchError(t *testing.T) {
	assert := test.NewAssert(t)

	g, err := binarypuzzle.New(2)
	assert.NoError(err)

	_, err = binarypuzzle.SolveAllBatch([]*binarypuzzle.Grid{g}, 1, binarypuzzle.WithOracle(failOracle{}))
	assert.ErrorContains(err, "boom")
	assert.ErrorContains(err, "grid 0")
}

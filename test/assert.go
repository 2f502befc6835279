// Package test provides helpers to test puzzle solving code.
package test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	binarypuzzle "github.com/Luycia/binary-puzzle"
)

// Assert is a helper to test puzzle grids and their solutions
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for convenience
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs the test function fn as a subtest. The subtest is parametrized by
// the description strings descs.
func (a *Assert) Run(fn func(assert *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		assert := &Assert{t, require.New(t)}
		fn(assert)
	})
}

// Log logs using the test instance logger.
func (assert *Assert) Log(v ...interface{}) {
	assert.t.Log(v...)
}

// CandidateOK fails the test unless s satisfies the counting rules and
// agrees with every fixed cell of g.
func (assert *Assert) CandidateOK(g *binarypuzzle.Grid, s *binarypuzzle.Solution) {
	assert.True(s.CheckParity(), "candidate violates parity:\n%s", s)
	assert.True(s.CheckTriples(), "candidate holds three consecutive equal cells:\n%s", s)
	assert.True(s.Extends(g), "candidate contradicts a fixed cell:\n%s", s)
}

// SolutionOK fails the test unless s satisfies every puzzle rule and agrees
// with every fixed cell of g.
func (assert *Assert) SolutionOK(g *binarypuzzle.Grid, s *binarypuzzle.Solution) {
	assert.CandidateOK(g, s)
	assert.NoError(s.Verify())
}

// SolvesUniquely fails the test unless g has exactly one solution, equal to
// want.
func (assert *Assert) SolvesUniquely(g *binarypuzzle.Grid, want [][]uint8, opts ...binarypuzzle.SolveOption) {
	expected, err := binarypuzzle.SolutionFromRows(want)
	assert.NoError(err)
	got, err := binarypuzzle.Unique(g, opts...)
	assert.NoError(err)
	assert.True(expected.Equal(got), "unexpected unique solution:\n%s", got)
	assert.SolutionOK(g, got)
}

// NoSolution fails the test unless g has no solution.
func (assert *Assert) NoSolution(g *binarypuzzle.Grid, opts ...binarypuzzle.SolveOption) {
	_, err := binarypuzzle.Unique(g, opts...)
	assert.ErrorIs(err, binarypuzzle.ErrNoSolution)
}

// Ambiguous fails the test unless g has more than one solution.
func (assert *Assert) Ambiguous(g *binarypuzzle.Grid, opts ...binarypuzzle.SolveOption) {
	_, err := binarypuzzle.Unique(g, opts...)
	assert.ErrorIs(err, binarypuzzle.ErrAmbiguous)
}

package binarypuzzle

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/Luycia/binary-puzzle/debug"
)

var (
	// ErrParity reports a row or column not holding an equal number of 0s
	// and 1s.
	ErrParity = errors.New("unbalanced row or column")

	// ErrTriples reports three consecutive equal cells in a row or column.
	ErrTriples = errors.New("three consecutive equal cells")

	// ErrDistinct reports two equal rows or two equal columns.
	ErrDistinct = errors.New("duplicate rows or columns")
)

// Solution is a complete n×n 0/1 assignment. It is a standalone value; it
// does not alias the grid it was solved from.
type Solution struct {
	n    int
	bits *bitset.BitSet
}

// SolutionFromRows builds a solution from a dense 0/1 row description. Only
// the shape is validated; the puzzle rules are checked separately with Check
// or Verify.
func SolutionFromRows(rows [][]uint8) (*Solution, error) {
	n := len(rows)
	if n < 2 {
		return nil, ErrSizeTooSmall
	}
	if n%2 != 0 {
		return nil, ErrOddSize
	}
	s := &Solution{n: n, bits: bitset.New(uint(n * n))}
	for r, row := range rows {
		if len(row) != n {
			return nil, ErrNotSquare
		}
		for c, v := range row {
			if v > 1 {
				return nil, ErrBadValue
			}
			if v == 1 {
				s.bits.Set(uint(r*n + c))
			}
		}
	}
	return s, nil
}

// newSolution decodes an oracle assignment, indexed by cell id row·n+col.
func newSolution(n int, assignment []bool) *Solution {
	debug.Assert(len(assignment) == n*n, "assignment length mismatch")
	s := &Solution{n: n, bits: bitset.New(uint(n * n))}
	for i, v := range assignment {
		if v {
			s.bits.Set(uint(i))
		}
	}
	return s
}

// Size returns the side length n.
func (s *Solution) Size() int {
	return s.n
}

// At returns the value of cell (row, col). It panics if the coordinates are
// out of range.
func (s *Solution) At(row, col int) uint8 {
	if row < 0 || row >= s.n || col < 0 || col >= s.n {
		panic("cell coordinates out of range")
	}
	if s.bits.Test(uint(row*s.n + col)) {
		return 1
	}
	return 0
}

// Rows returns a dense copy of the assignment.
func (s *Solution) Rows() [][]uint8 {
	rows := make([][]uint8, s.n)
	for r := range rows {
		rows[r] = make([]uint8, s.n)
		for c := range rows[r] {
			rows[r][c] = s.At(r, c)
		}
	}
	return rows
}

// Equal reports whether both solutions assign the same values.
func (s *Solution) Equal(o *Solution) bool {
	return s.n == o.n && s.bits.Equal(o.bits)
}

// CheckParity reports whether every row and every column holds exactly n/2
// ones.
func (s *Solution) CheckParity() bool {
	half := s.n / 2
	for i := 0; i < s.n; i++ {
		rowOnes, colOnes := 0, 0
		for j := 0; j < s.n; j++ {
			if s.At(i, j) == 1 {
				rowOnes++
			}
			if s.At(j, i) == 1 {
				colOnes++
			}
		}
		if rowOnes != half || colOnes != half {
			return false
		}
	}
	return true
}

// CheckTriples reports whether no row or column holds three consecutive
// equal cells.
func (s *Solution) CheckTriples() bool {
	for i := 0; i < s.n; i++ {
		for j := 0; j+2 < s.n; j++ {
			if s.At(i, j) == s.At(i, j+1) && s.At(i, j) == s.At(i, j+2) {
				return false
			}
			if s.At(j, i) == s.At(j+1, i) && s.At(j+2, i) == s.At(j, i) {
				return false
			}
		}
	}
	return true
}

// CheckDistinct reports whether all rows are pairwise distinct and all
// columns are pairwise distinct.
func (s *Solution) CheckDistinct() bool {
	return s.distinctLines(true) && s.distinctLines(false)
}

func (s *Solution) distinctLines(rows bool) bool {
	lines := make([]*bitset.BitSet, s.n)
	for i := 0; i < s.n; i++ {
		line := bitset.New(uint(s.n))
		for j := 0; j < s.n; j++ {
			v := s.At(i, j)
			if !rows {
				v = s.At(j, i)
			}
			if v == 1 {
				line.Set(uint(j))
			}
		}
		lines[i] = line
	}
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			if lines[i].Equal(lines[j]) {
				return false
			}
		}
	}
	return true
}

// Check reports whether the solution satisfies every puzzle rule.
func (s *Solution) Check() bool {
	return s.CheckParity() && s.CheckTriples() && s.CheckDistinct()
}

// Verify returns nil if the solution satisfies every puzzle rule, and the
// first violated rule otherwise: ErrParity, then ErrTriples, then
// ErrDistinct.
func (s *Solution) Verify() error {
	if !s.CheckParity() {
		return ErrParity
	}
	if !s.CheckTriples() {
		return ErrTriples
	}
	if !s.CheckDistinct() {
		return ErrDistinct
	}
	return nil
}

// Extends reports whether the solution agrees with every fixed cell of g.
func (s *Solution) Extends(g *Grid) bool {
	if s.n != g.Size() {
		return false
	}
	for _, fc := range g.Fixed() {
		if s.At(fc.Row, fc.Col) != fc.Value {
			return false
		}
	}
	return true
}

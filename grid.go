package binarypuzzle

import (
	"errors"
	"maps"
	"sort"
)

var (
	// ErrOddSize is returned when a grid size is not even.
	ErrOddSize = errors.New("grid size must be even")

	// ErrSizeTooSmall is returned when a grid size is below 2.
	ErrSizeTooSmall = errors.New("grid size must be at least 2")

	// ErrNotSquare is returned by FromRows when a row length differs from
	// the number of rows.
	ErrNotSquare = errors.New("rows do not form a square grid")

	// ErrOutOfRange is returned by Fix for coordinates outside the grid.
	ErrOutOfRange = errors.New("cell coordinates out of range")

	// ErrBadValue is returned by Fix for a cell value other than 0 or 1.
	ErrBadValue = errors.New("cell value must be 0 or 1")
)

// Grid describes a binary puzzle instance: an n×n board, n even, with a
// sparse set of fixed cells. The zero value is not usable; build a Grid with
// New or FromRows.
//
// A Grid handed to Compile or to a solving function must not be mutated
// while the call runs. The library itself never mutates it.
type Grid struct {
	n     int
	fixed map[uint32]uint8
}

// New returns an empty grid of the given side length.
func New(size int) (*Grid, error) {
	if size < 2 {
		return nil, ErrSizeTooSmall
	}
	if size%2 != 0 {
		return nil, ErrOddSize
	}
	return &Grid{n: size, fixed: make(map[uint32]uint8)}, nil
}

// FromRows builds a grid from a dense row description where -1 marks an
// empty cell and 0 or 1 a fixed one.
func FromRows(rows [][]int8) (*Grid, error) {
	g, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.n {
			return nil, ErrNotSquare
		}
		for c, v := range row {
			if v == -1 {
				continue
			}
			if err := g.Fix(r, c, uint8(v)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Fix sets the cell (row, col) to v. Fixing a cell twice overwrites the
// earlier value.
func (g *Grid) Fix(row, col int, v uint8) error {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return ErrOutOfRange
	}
	if v > 1 {
		return ErrBadValue
	}
	g.fixed[g.idx(row, col)] = v
	return nil
}

func (g *Grid) idx(row, col int) uint32 {
	return uint32(row*g.n + col)
}

// Size returns the side length n.
func (g *Grid) Size() int {
	return g.n
}

// At returns the value of cell (row, col) and whether the cell is fixed.
// The value is meaningful only when fixed is true. At panics if the
// coordinates are out of range.
func (g *Grid) At(row, col int) (v uint8, fixed bool) {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		panic("cell coordinates out of range")
	}
	v, fixed = g.fixed[g.idx(row, col)]
	return
}

// NbFixed returns the number of fixed cells.
func (g *Grid) NbFixed() int {
	return len(g.fixed)
}

// FixedCell is one given of a puzzle instance.
type FixedCell struct {
	Row, Col int
	Value    uint8
}

// Fixed returns a snapshot of the fixed cells, sorted by row then column.
func (g *Grid) Fixed() []FixedCell {
	idxs := make([]int, 0, len(g.fixed))
	for idx := range g.fixed {
		idxs = append(idxs, int(idx))
	}
	sort.Ints(idxs)
	cells := make([]FixedCell, len(idxs))
	for i, idx := range idxs {
		cells[i] = FixedCell{Row: idx / g.n, Col: idx % g.n, Value: g.fixed[uint32(idx)]}
	}
	return cells
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, fixed: maps.Clone(g.fixed)}
}

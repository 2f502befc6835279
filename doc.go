// Package binarypuzzle solves binary puzzles (also known as takuzu) of
// arbitrary even size by reducing them to pseudo-boolean feasibility problems.
//
// A binary puzzle is an n×n grid, n even, to be filled with 0s and 1s so that:
//   - each row and each column contains exactly n/2 ones
//   - no row or column contains three consecutive equal cells
//   - all rows are pairwise distinct, and all columns are pairwise distinct
//
// Fill rates of partially given grids vary; a well-posed puzzle has exactly
// one completion. The package finds one, all, or the unique completion of a
// [Grid] by repeatedly querying a [solver.Oracle] with a [constraint.Model]
// encoding the first two rules, excluding each returned assignment with a
// cut, and keeping the assignments whose lines are pairwise distinct.
package binarypuzzle

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")

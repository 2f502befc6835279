package binarypuzzle_test

import (
	"fmt"

	binarypuzzle "github.com/Luycia/binary-puzzle"
)

func ExampleGrid_String() {
	g, _ := binarypuzzle.New(2)
	_ = g.Fix(0, 0, 1)
	fmt.Println(g)
	// Output:
	// ┌───┬───┐
	// │ 1 │   │
	// ├───┼───┤
	// │   │   │
	// └───┴───┘
}

func ExampleSolve() {
	g, _ := binarypuzzle.New(2)
	_ = g.Fix(0, 0, 0)
	s, _ := binarypuzzle.Solve(g)
	fmt.Println(s)
	// Output:
	// ┌───┬───┐
	// │ 0 │ 1 │
	// ├───┼───┤
	// │ 1 │ 0 │
	// └───┴───┘
}

func ExampleUnique_ambiguous() {
	g, _ := binarypuzzle.New(2)
	_, err := binarypuzzle.Unique(g)
	fmt.Println(err)
	// Output:
	// puzzle has more than one solution
}

package binarypuzzle

import "strings"

// renderBoard draws an n×n board with box-drawing characters. cell returns
// the byte shown for a cell, ' ' for an empty one.
func renderBoard(n int, cell func(row, col int) byte) string {
	rule := func(left, mid, right rune) string {
		var sbb strings.Builder
		sbb.WriteRune(left)
		for c := 0; c < n; c++ {
			if c > 0 {
				sbb.WriteRune(mid)
			}
			sbb.WriteString("───")
		}
		sbb.WriteRune(right)
		return sbb.String()
	}

	lines := make([]string, 0, 2*n+1)
	lines = append(lines, rule('┌', '┬', '┐'))
	for r := 0; r < n; r++ {
		if r > 0 {
			lines = append(lines, rule('├', '┼', '┤'))
		}
		var sbb strings.Builder
		for c := 0; c < n; c++ {
			sbb.WriteString("│ ")
			sbb.WriteByte(cell(r, c))
			sbb.WriteByte(' ')
		}
		sbb.WriteRune('│')
		lines = append(lines, sbb.String())
	}
	lines = append(lines, rule('└', '┴', '┘'))
	return strings.Join(lines, "\n")
}

// String renders the grid, fixed cells as their value and empty cells blank.
func (g *Grid) String() string {
	return renderBoard(g.n, func(r, c int) byte {
		if v, ok := g.At(r, c); ok {
			return '0' + v
		}
		return ' '
	})
}

// String renders the solution.
func (s *Solution) String() string {
	return renderBoard(s.n, func(r, c int) byte {
		return '0' + s.At(r, c)
	})
}

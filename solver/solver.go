// Package solver decides feasibility of pseudo-boolean models built with
// binary-puzzle/constraint.
//
// The Oracle interface is the capability contract used by the enumeration
// loop: given a model, produce a satisfying assignment or report that none
// exists. The default implementation runs the github.com/crillab/gophersat
// engine in process; any engine able to answer the same question can be
// plugged in instead.
package solver

import (
	"errors"

	"github.com/Luycia/binary-puzzle/constraint"
)

var (
	// ErrInfeasible is returned by an Oracle when the model admits no
	// satisfying assignment.
	ErrInfeasible = errors.New("model is infeasible")

	// ErrIndeterminate is returned when the engine stopped before reaching
	// a verdict.
	ErrIndeterminate = errors.New("solver stopped before reaching a verdict")
)

// Oracle decides feasibility of a pseudo-boolean model.
//
// Solve returns an assignment indexed by variable id if the model is
// feasible, and ErrInfeasible if it is not. Any other error means the engine
// failed; the caller can conclude nothing about feasibility from it.
type Oracle interface {
	Solve(m *constraint.Model) ([]bool, error)
}

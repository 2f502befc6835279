package solver

import (
	"time"

	gs "github.com/crillab/gophersat/solver"

	"github.com/Luycia/binary-puzzle/constraint"
	"github.com/Luycia/binary-puzzle/debug"
	"github.com/Luycia/binary-puzzle/logger"
)

// Gophersat is an Oracle running the gophersat PB engine in process.
//
// The zero value is ready to use. It is stateless and safe for concurrent
// use; every Solve call builds its own engine instance.
type Gophersat struct{}

// NewGophersat returns an Oracle backed by gophersat.
func NewGophersat() *Gophersat {
	return &Gophersat{}
}

// Solve implements Oracle.
func (*Gophersat) Solve(m *constraint.Model) ([]bool, error) {
	log := logger.Logger().With().Str("backend", "gophersat").Int("nbConstraints", m.NbConstraints()).Logger()

	constrs := make([]gs.PBConstr, 0, 2*m.NbConstraints())
	for _, c := range m.Constraints {
		// gophersat normalizes in place, so each PBConstr gets fresh slices
		switch c.Sense {
		case constraint.Eq:
			lits, weights := pbTerms(m, c.L)
			constrs = append(constrs, gs.GtEq(lits, weights, c.K))
			lits, weights = pbTerms(m, c.L)
			constrs = append(constrs, gs.LtEq(lits, weights, c.K))
		case constraint.AtMost:
			lits, weights := pbTerms(m, c.L)
			constrs = append(constrs, gs.LtEq(lits, weights, c.K))
		case constraint.AtLeast:
			lits, weights := pbTerms(m, c.L)
			constrs = append(constrs, gs.GtEq(lits, weights, c.K))
		}
	}

	start := time.Now()
	s := gs.New(gs.ParsePBConstrs(constrs))
	status := s.Solve()
	log.Debug().Dur("took", time.Since(start)).Msg("solve done")

	switch status {
	case gs.Sat:
		// the engine model may be shorter than NbVars when trailing
		// variables appear in no constraint
		assignment := make([]bool, m.NbVars)
		copy(assignment, s.Model())
		return assignment, nil
	case gs.Unsat:
		return nil, ErrInfeasible
	default:
		return nil, ErrIndeterminate
	}
}

// pbTerms translates a linear expression to gophersat literals and weights.
// Variable i becomes literal i+1; negative coefficients are left for the
// engine constructors to normalize.
func pbTerms(m *constraint.Model, l constraint.LinearExpression) (lits, weights []int) {
	lits = make([]int, len(l))
	weights = make([]int, len(l))
	for i, t := range l {
		debug.Assert(int(t.Var) < m.NbVars, "variable id out of model range")
		lits[i] = int(t.Var) + 1
		weights[i] = t.Coeff
	}
	return lits, weights
}

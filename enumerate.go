package binarypuzzle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Luycia/binary-puzzle/debug"
	"github.com/Luycia/binary-puzzle/logger"
	"github.com/Luycia/binary-puzzle/solver"
)

var (
	// ErrNoSolution is returned by Solve and Unique when the puzzle has no
	// solution.
	ErrNoSolution = errors.New("puzzle has no solution")

	// ErrAmbiguous is returned by Unique when the puzzle has more than one
	// solution.
	ErrAmbiguous = errors.New("puzzle has more than one solution")
)

// Result holds the outcome of a full enumeration.
type Result struct {
	// Solutions are the assignments satisfying every puzzle rule, in
	// discovery order.
	Solutions []*Solution

	// Candidates are all assignments the oracle produced, in discovery
	// order. Each satisfies the counting rules; the members also passing
	// row and column distinctness appear in Solutions.
	Candidates []*Solution
}

type solveConfig struct {
	oracle solver.Oracle
	log    zerolog.Logger
}

// SolveOption configures the solving functions.
type SolveOption func(*solveConfig) error

// WithOracle substitutes the feasibility oracle. The default is the
// in-process gophersat backend.
func WithOracle(o solver.Oracle) SolveOption {
	return func(cfg *solveConfig) error {
		if o == nil {
			return errors.New("nil oracle")
		}
		cfg.oracle = o
		return nil
	}
}

// WithLogger overrides the logger used by the solving functions.
func WithLogger(l zerolog.Logger) SolveOption {
	return func(cfg *solveConfig) error {
		cfg.log = l
		return nil
	}
}

func newSolveConfig(opts ...SolveOption) (solveConfig, error) {
	cfg := solveConfig{
		oracle: solver.NewGophersat(),
		log:    logger.Logger(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return solveConfig{}, fmt.Errorf("apply option: %w", err)
		}
	}
	return cfg, nil
}

// Enumerate finds every assignment satisfying the counting rules of g and
// splits them by the distinctness rule. A contradictory grid yields an empty
// Result and a nil error; an oracle failure aborts the run.
func Enumerate(g *Grid, opts ...SolveOption) (*Result, error) {
	cfg, err := newSolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	return enumerate(g, &cfg, false)
}

// enumerate drives the oracle until infeasibility, excluding each returned
// assignment with a cut. With firstValid set it stops at the first
// assignment passing the distinctness rule.
func enumerate(g *Grid, cfg *solveConfig, firstValid bool) (*Result, error) {
	log := cfg.log.With().Int("size", g.Size()).Int("nbFixed", g.NbFixed()).Logger()

	res := &Result{}
	cuts := NewCutSet()
	for {
		m := Compile(g, cuts.Cuts()...)
		assignment, err := cfg.oracle.Solve(m)
		if errors.Is(err, solver.ErrInfeasible) {
			log.Debug().
				Int("candidates", len(res.Candidates)).
				Int("solutions", len(res.Solutions)).
				Msg("enumeration exhausted")
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("oracle after %d cuts: %w", cuts.Len(), err)
		}
		debug.Assert(m.Satisfied(assignment), "oracle assignment violates the model")

		s := newSolution(g.Size(), assignment)
		if !cuts.Reject(s) {
			return nil, fmt.Errorf("oracle returned an excluded assignment after %d cuts", cuts.Len())
		}
		res.Candidates = append(res.Candidates, s)
		distinct := s.CheckDistinct()
		if distinct {
			res.Solutions = append(res.Solutions, s)
		}
		log.Debug().
			Int("iteration", cuts.Len()).
			Int("candidates", len(res.Candidates)).
			Int("solutions", len(res.Solutions)).
			Bool("distinct", distinct).
			Msg("assignment found")
		if distinct && firstValid {
			return res, nil
		}
	}
}

// SolveAll returns every solution of g, in discovery order. A puzzle without
// solutions yields an empty slice and a nil error.
func SolveAll(g *Grid, opts ...SolveOption) ([]*Solution, error) {
	res, err := Enumerate(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Solutions, nil
}

// Solve returns the first solution of g found, or ErrNoSolution.
func Solve(g *Grid, opts ...SolveOption) (*Solution, error) {
	cfg, err := newSolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	res, err := enumerate(g, &cfg, true)
	if err != nil {
		return nil, err
	}
	if len(res.Solutions) == 0 {
		return nil, ErrNoSolution
	}
	return res.Solutions[0], nil
}

// Unique returns the only solution of g. It returns ErrNoSolution if g has
// none and ErrAmbiguous if it has several.
func Unique(g *Grid, opts ...SolveOption) (*Solution, error) {
	res, err := Enumerate(g, opts...)
	if err != nil {
		return nil, err
	}
	switch len(res.Solutions) {
	case 0:
		return nil, ErrNoSolution
	case 1:
		return res.Solutions[0], nil
	default:
		return nil, ErrAmbiguous
	}
}

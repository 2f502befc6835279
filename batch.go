package binarypuzzle

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveAllBatch enumerates independent grids in parallel, at most limit at a
// time (limit <= 0 means no limit). results[i] holds the solutions of
// grids[i]. If any grid fails, the first error is returned once the grids
// already running have finished.
//
// The options apply to every grid; a substituted oracle must be safe for
// concurrent use.
func SolveAllBatch(grids []*Grid, limit int, opts ...SolveOption) ([][]*Solution, error) {
	results := make([][]*Solution, len(grids))

	var group errgroup.Group
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i, g := range grids {
		group.Go(func() error {
			sols, err := SolveAll(g, opts...)
			if err != nil {
				return fmt.Errorf("grid %d: %w", i, err)
			}
			results[i] = sols
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

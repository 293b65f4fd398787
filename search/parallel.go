package search

import (
	"context"
	"golang.org/x/sync/errgroup"
)

// checkEvery is how many candidates are scored between context checks.
const checkEvery int = 1024

// scoreAll calls fn for every index in [0, n) and returns the scores in index
// order. With workers > 1 the range is split into contiguous chunks scored
// concurrently. Aggregation is left to the caller so that insertion order, and
// therefore tie-breaking, never depends on scheduling.
func scoreAll(ctx context.Context, n, workers int, fn func(i int) (float64, error)) ([]float64, error) {
	scores := make([]float64, n)
	if workers < 2 || n < 2*workers {
		return scores, scoreRange(ctx, scores, 0, n, fn)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		start, end := lo, lo+chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			return scoreRange(gctx, scores, start, end, fn)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

func scoreRange(ctx context.Context, scores []float64, start, end int, fn func(i int) (float64, error)) error {
	var err error
	for i := start; i < end; i++ {
		if (i-start)%checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				return err
			}
		}
		scores[i], err = fn(i)
		if err != nil {
			return err
		}
	}
	return nil
}

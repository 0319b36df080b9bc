package calculator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the goroutines scoring regime windows.
const DefaultWorkers = 4

// DetectRegimeChangesConcurrent returns the same scores as DetectRegimeChanges,
// splitting the scanned index range into disjoint chunks scored in parallel.
func DetectRegimeChangesConcurrent(ctx context.Context, series []float64, windowSize, workers int) ([]float64, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("regime window %d: %w", windowSize, ErrInvalidWindow)
	}
	if workers < 1 {
		workers = 1
	}
	scores := make([]float64, len(series))
	if len(series) < 2*windowSize {
		return scores, nil
	}

	start, end := windowSize, len(series)-windowSize
	chunk := (end - start + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := start; lo < end; lo += chunk {
		lo := lo
		hi := min(lo+chunk, end)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s, err := regimeScore(series, i, windowSize)
				if err != nil {
					return err
				}
				scores[i] = s
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

package collector

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"FractalSentinel/internal/calculator"
	"FractalSentinel/internal/model"

	"golang.org/x/sync/errgroup"
)

// SweepOptions configures a Monte-Carlo run of Hurst estimates over persistence values.
type SweepOptions struct {
	Persistences []float64
	Trials       int
	Length       int
	StartValue   float64
	Seed         int64
	Workers      int
}

// Sweep generates Trials series for every persistence and summarizes their Hurst
// estimates. Trial k of persistence j is seeded with Seed+j*Trials+k, so results do
// not depend on scheduling.
func Sweep(ctx context.Context, opts SweepOptions) ([]model.SweepResult, error) {
	if opts.Trials < 1 {
		return nil, fmt.Errorf("sweep needs at least one trial, got %d", opts.Trials)
	}
	workers := max(opts.Workers, 1)

	estimates := make([][]float64, len(opts.Persistences))
	for j := range estimates {
		estimates[j] = make([]float64, opts.Trials)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for j, p := range opts.Persistences {
		j, p := j, p
		for k := 0; k < opts.Trials; k++ {
			k := k
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := rand.New(rand.NewSource(opts.Seed + int64(j*opts.Trials+k)))
				series, err := calculator.Generate(opts.Length, p, opts.StartValue, rng)
				if err != nil {
					return fmt.Errorf("sweep persistence %v: %w", p, err)
				}
				estimates[j][k] = calculator.Hurst(series)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]model.SweepResult, len(opts.Persistences))
	for j, p := range opts.Persistences {
		m, sd := meanStdDev(estimates[j])
		results[j] = model.SweepResult{Persistence: p, Trials: opts.Trials, MeanHurst: m, StdDevHurst: sd}
	}
	return results, nil
}

func meanStdDev(values []float64) (float64, float64) {
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return m, math.Sqrt(sq / float64(len(values)))
}

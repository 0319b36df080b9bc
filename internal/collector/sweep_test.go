package collector

import (
	"context"
	"testing"

	"FractalSentinel/internal/calculator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_DeterministicAcrossWorkerCounts(t *testing.T) {
	opts := SweepOptions{
		Persistences: []float64{0.2, 0.5, 0.8},
		Trials:       20,
		Length:       200,
		StartValue:   100,
		Seed:         123,
		Workers:      1,
	}
	one, err := Sweep(context.Background(), opts)
	require.NoError(t, err)

	opts.Workers = 8
	many, err := Sweep(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, one, many)
	require.Len(t, one, 3)
	for i, r := range one {
		assert.Equal(t, opts.Persistences[i], r.Persistence)
		assert.Equal(t, 20, r.Trials)
		assert.GreaterOrEqual(t, r.MeanHurst, 0.0)
		assert.LessOrEqual(t, r.MeanHurst, 1.0)
		assert.GreaterOrEqual(t, r.StdDevHurst, 0.0)
	}
}

func TestSweep_FullPersistenceIsDeterministicDrift(t *testing.T) {
	res, err := Sweep(context.Background(), SweepOptions{
		Persistences: []float64{0, 1},
		Trials:       5,
		Length:       200,
		StartValue:   100,
		Seed:         1,
		Workers:      2,
	})
	require.NoError(t, err)
	for _, r := range res {
		assert.InDelta(t, 1.0, r.MeanHurst, 0.02)
		assert.InDelta(t, 0.0, r.StdDevHurst, 1e-9)
	}
}

func TestSweep_InvalidInput(t *testing.T) {
	_, err := Sweep(context.Background(), SweepOptions{Persistences: []float64{0.5}, Trials: 0, Length: 100})
	assert.Error(t, err)

	_, err = Sweep(context.Background(), SweepOptions{Persistences: []float64{1.5}, Trials: 2, Length: 100, Workers: 2})
	assert.ErrorIs(t, err, calculator.ErrInvalidPersistence)
}

package calculator

import (
	"fmt"
	"math"
)

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Generate produces a synthetic series starting at startValue.
//
// Each step mixes a uniform shock in [-1, 1) with a pull that follows the sign of
// the previous value relative to startValue. The mix weight is |persistence-0.5|*2,
// so persistence 0.5 gives an unbiased random walk and both 0 and 1 give a pure
// drift. This is a persistence proxy, not fractional Brownian motion.
func Generate(length int, persistence, startValue float64, rng RandomSource) ([]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("generate %d points: %w", length, ErrInvalidLength)
	}
	if math.IsNaN(persistence) || persistence < 0 || persistence > 1 {
		return nil, fmt.Errorf("generate with persistence %v: %w", persistence, ErrInvalidPersistence)
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}

	w := math.Abs(persistence-0.5) * 2
	series := make([]float64, length)
	series[0] = startValue
	for i := 1; i < length; i++ {
		r := rng.Float64()*2 - 1
		trend := -1.0
		if series[i-1] > startValue {
			trend = 1.0
		}
		series[i] = series[i-1] + (r*(1-w)+trend*w)*2
	}
	return series, nil
}

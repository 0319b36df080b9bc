package calculator

import (
	"fmt"
	"math"
)

// Volatility returns the population standard deviation of the simple returns of series.
// Fewer than two points yield 0. A zero value used as a return base fails with ErrZeroPrice,
// and returns or a deviation that overflow float64 fail with ErrNonFiniteReturn.
func Volatility(series []float64) (float64, error) {
	if len(series) < 2 {
		return 0, nil
	}
	returns := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		if series[i-1] == 0 {
			return 0, fmt.Errorf("return at index %d: %w", i, ErrZeroPrice)
		}
		r := (series[i] - series[i-1]) / series[i-1]
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return 0, fmt.Errorf("return at index %d: %w", i, ErrNonFiniteReturn)
		}
		returns[i-1] = r
	}
	vol := populationStdDev(returns)
	if math.IsInf(vol, 0) || math.IsNaN(vol) {
		return 0, fmt.Errorf("standard deviation of %d returns: %w", len(returns), ErrNonFiniteReturn)
	}
	return vol, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sumSquares float64
	for _, v := range values {
		d := v - m
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

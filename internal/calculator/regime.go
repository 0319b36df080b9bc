package calculator

import (
	"fmt"
	"math"
)

// DefaultWindowSize is the window length used by the dashboard's regime scan.
const DefaultWindowSize = 50

// DetectRegimeChanges scores, for every index i, how differently the windows
// [i-windowSize, i) and [i, i+windowSize) behave in Hurst exponent and volatility.
// Scores are in [0, 1]; indices without two full windows stay 0.
func DetectRegimeChanges(series []float64, windowSize int) ([]float64, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("regime window %d: %w", windowSize, ErrInvalidWindow)
	}
	scores := make([]float64, len(series))
	if len(series) < 2*windowSize {
		return scores, nil
	}
	for i := windowSize; i < len(series)-windowSize; i++ {
		s, err := regimeScore(series, i, windowSize)
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}
	return scores, nil
}

func regimeScore(series []float64, i, windowSize int) (float64, error) {
	before := series[i-windowSize : i]
	after := series[i : i+windowSize]

	v1, err := Volatility(before)
	if err != nil {
		return 0, fmt.Errorf("regime window ending at %d: %w", i, err)
	}
	v2, err := Volatility(after)
	if err != nil {
		return 0, fmt.Errorf("regime window starting at %d: %w", i, err)
	}

	hurstChange := math.Abs(Hurst(after) - Hurst(before))

	// A flat first window has no relative scale: no change if the second is
	// flat too, otherwise the ratio is unbounded and the score saturates.
	if v1 == 0 {
		if v2 == 0 {
			return math.Min(1, hurstChange), nil
		}
		return 1, nil
	}
	volChange := math.Abs(v2-v1) / v1
	return math.Min(1, (2*hurstChange+volChange)/2), nil
}

package calculator

import (
	"fmt"
	"math"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
)

const (
	// DefaultTrendPeriod is the overlay length drawn on the price chart.
	DefaultTrendPeriod = 20
	// DefaultRollingWindow is the trailing window of the rolling Hurst line.
	DefaultRollingWindow = 100
)

// TrendOverlay returns, for every index i > period, the mean of the period values
// preceding i. Other entries are NaN.
func TrendOverlay(series []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("trend period %d: %w", period, ErrInvalidPeriod)
	}
	overlay := make([]float64, len(series))
	for i := range overlay {
		overlay[i] = math.NaN()
	}
	if len(series) <= period {
		return overlay, nil
	}

	sma := trend.NewSmaWithPeriod[float64](period)
	averages := helper.ChanToSlice(sma.Compute(helper.SliceToChan(series)))
	// averages[k] covers the window ending at series index k+idle.
	idle := len(series) - len(averages)
	for i := period + 1; i < len(series); i++ {
		k := i - 1 - idle
		if k >= 0 && k < len(averages) {
			overlay[i] = averages[k]
		}
	}
	return overlay, nil
}

// RollingHurst returns Hurst(series[i-window+1 : i+1]) for every index whose
// trailing window is full, NaN before.
func RollingHurst(series []float64, window int) ([]float64, error) {
	if window < MinHurstPoints {
		return nil, fmt.Errorf("rolling hurst window %d: %w", window, ErrInvalidWindow)
	}
	out := make([]float64, len(series))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = Hurst(series[i-window+1 : i+1])
	}
	return out, nil
}

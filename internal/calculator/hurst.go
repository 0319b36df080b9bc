package calculator

import (
	"math"

	"FractalSentinel/internal/model"
)

const (
	// MinHurstPoints is the shortest series the estimator will fit.
	MinHurstPoints = 10
	// NeutralHurst is returned when there is not enough data to fit a line.
	NeutralHurst = 0.5
)

// rsPeriods are the segment lengths tried by the R/S analysis.
var rsPeriods = []int{10, 20, 40, 80}

// Hurst estimates the Hurst exponent of series by rescaled-range analysis.
// Returns 0.5 if data is insufficient or the fit is undefined. The result is clamped to [0, 1].
func Hurst(series []float64) float64 {
	return HurstDetail(series).Exponent
}

// HurstDetail is Hurst plus the periods and log-log points behind the estimate.
func HurstDetail(series []float64) model.HurstResult {
	n := len(series)
	if n < MinHurstPoints {
		return model.HurstResult{Exponent: NeutralHurst}
	}

	var periods []int
	var points []model.LogLogPoint
	for _, p := range rsPeriods {
		if float64(p) >= float64(n)/2 {
			continue
		}
		periods = append(periods, p)
		points = append(points, model.LogLogPoint{
			LogPeriod: math.Log(float64(p)),
			LogRS:     math.Log(averageRescaledRange(series, p)),
		})
	}

	result := model.HurstResult{Exponent: NeutralHurst, Periods: periods, Points: points}
	if len(points) < 2 {
		return result
	}
	// Overflowing segments give ln(0) on every point and a NaN slope.
	if slope := regressionSlope(points); !math.IsNaN(slope) {
		result.Exponent = clamp(slope, 0, 1)
	}
	return result
}

// averageRescaledRange averages R/S over the floor(len/period) leading segments.
func averageRescaledRange(series []float64, period int) float64 {
	segments := len(series) / period
	rsSum := 0.0
	for k := 0; k < segments; k++ {
		rsSum += rescaledRange(series[k*period : (k+1)*period])
	}
	return rsSum / float64(segments)
}

func rescaledRange(segment []float64) float64 {
	m := mean(segment)
	var cum, lo, hi, sumSquares float64
	for i, v := range segment {
		d := v - m
		cum += d
		sumSquares += d * d
		if i == 0 || cum < lo {
			lo = cum
		}
		if i == 0 || cum > hi {
			hi = cum
		}
	}
	stdDev := math.Sqrt(sumSquares / float64(len(segment)))
	if stdDev > 0 {
		return (hi - lo) / stdDev
	}
	return 1
}

// regressionSlope fits y = a + b*x by least squares and returns b.
func regressionSlope(points []model.LogLogPoint) float64 {
	n := float64(len(points))
	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.LogPeriod
		sumY += p.LogRS
		sumXY += p.LogPeriod * p.LogRS
		sumX2 += p.LogPeriod * p.LogPeriod
	}
	return (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package notifier

import (
	"fmt"
	"math"
	"strings"

	"FractalSentinel/internal/model"
)

// maxListedChangePoints caps the change points printed inline.
const maxListedChangePoints = 10

// FormatReport renders a report and its assessment as plain text.
func FormatReport(rep *model.Report, a *model.Assessment) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("FractalSentinel | %s | %s\n\n", rep.Label, rep.GeneratedAt.Format("2006-01-02 15:04:05")))

	n := len(rep.Series)
	if n > 0 {
		b.WriteString(fmt.Sprintf("Points: %d | first %.2f | last %.2f\n", n, rep.Series[0], rep.Series[n-1]))
	}
	if v, ok := lastDefined(rep.Trend); ok {
		b.WriteString(fmt.Sprintf("Trend overlay: %.2f\n", v))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Hurst exponent: %.3f  %s (risk %s)\n", rep.Hurst.Exponent, a.Description, a.Risk))
	for i, p := range rep.Hurst.Points {
		b.WriteString(fmt.Sprintf("  n=%-3d ln n=%.3f  ln R/S=%.3f\n", rep.Hurst.Periods[i], p.LogPeriod, p.LogRS))
	}
	if v, ok := lastDefined(rep.RollingHurst); ok {
		b.WriteString(fmt.Sprintf("Rolling Hurst (latest window): %.3f\n", v))
	}
	b.WriteString(fmt.Sprintf("Volatility: %.4f\n\n", rep.Volatility))

	b.WriteString(fmt.Sprintf("Regime: %s", a.Tier.Label))
	if a.PeakIndex >= 0 {
		b.WriteString(fmt.Sprintf(" | peak %.3f at index %d", a.PeakScore, a.PeakIndex))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Change points (score >= %.2f): %d", a.ScoreThreshold, len(a.ChangePoints)))
	if len(a.ChangePoints) > 0 {
		shown := a.ChangePoints
		if len(shown) > maxListedChangePoints {
			shown = shown[:maxListedChangePoints]
		}
		b.WriteString(fmt.Sprintf(" %v", shown))
		if len(a.ChangePoints) > len(shown) {
			b.WriteString(" ...")
		}
	}
	b.WriteString("\n")

	return b.String()
}

// FormatSweep renders sweep results as a table.
func FormatSweep(results []model.SweepResult) string {
	var b strings.Builder
	b.WriteString("persistence  trials  mean H  stddev H\n")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("%11.2f  %6d  %6.3f  %8.3f\n", r.Persistence, r.Trials, r.MeanHurst, r.StdDevHurst))
	}
	return b.String()
}

func lastDefined(values []float64) (float64, bool) {
	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			return values[i], true
		}
	}
	return 0, false
}

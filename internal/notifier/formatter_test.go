package notifier

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"FractalSentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() (*model.Report, *model.Assessment) {
	nan := math.NaN()
	rep := &model.Report{
		Label:       "SPX500 (synthetic)",
		GeneratedAt: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
		Series:      []float64{100, 101.5, 99.25},
		Trend:       []float64{nan, 100.75, nan},
		Hurst: model.HurstResult{
			Exponent: 0.734,
			Periods:  []int{10, 20},
			Points:   []model.LogLogPoint{{LogPeriod: 2.302, LogRS: 1.1}, {LogPeriod: 2.995, LogRS: 1.6}},
		},
		Volatility:   0.0123,
		RollingHurst: []float64{nan, nan, 0.66},
	}
	a := &model.Assessment{
		Character:      model.CharacterTrending,
		Description:    "Trending (persistent)",
		Risk:           model.RiskHigh,
		Tier:           model.AlertTier{Label: "elevated", MinScore: 0.5},
		PeakScore:      0.61,
		PeakIndex:      1,
		ChangePoints:   []int{1},
		ScoreThreshold: 0.5,
	}
	return rep, a
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(sampleReport())

	assert.Contains(t, out, "SPX500 (synthetic) | 2025-03-04 10:00:00")
	assert.Contains(t, out, "Points: 3 | first 100.00 | last 99.25")
	assert.Contains(t, out, "Trend overlay: 100.75")
	assert.Contains(t, out, "Hurst exponent: 0.734  Trending (persistent) (risk HIGH)")
	assert.Contains(t, out, "n=20")
	assert.Contains(t, out, "Rolling Hurst (latest window): 0.660")
	assert.Contains(t, out, "Volatility: 0.0123")
	assert.Contains(t, out, "Regime: elevated | peak 0.610 at index 1")
	assert.Contains(t, out, "Change points (score >= 0.50): 1 [1]")
}

func TestFormatReport_TruncatesChangePoints(t *testing.T) {
	rep, a := sampleReport()
	a.ChangePoints = make([]int, 25)
	for i := range a.ChangePoints {
		a.ChangePoints[i] = i
	}
	out := FormatReport(rep, a)
	assert.Contains(t, out, "25 [0 1 2 3 4 5 6 7 8 9] ...")
}

func TestFormatSweep(t *testing.T) {
	out := FormatSweep([]model.SweepResult{
		{Persistence: 0.5, Trials: 100, MeanHurst: 0.91, StdDevHurst: 0.05},
		{Persistence: 1, Trials: 100, MeanHurst: 0.995, StdDevHurst: 0},
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "0.50")
	assert.Contains(t, lines[1], "0.910")
	assert.Contains(t, lines[2], "0.995")
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)
	require.NoError(t, n.Send(context.Background(), "hello"))
	assert.Equal(t, "hello\n", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Send(ctx, "late"), context.Canceled)
}

package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FractalSentinel/internal/calculator"
	"FractalSentinel/internal/model"

	"github.com/rs/zerolog/log"
)

// Options tunes the calculators run by Collect.
type Options struct {
	WindowSize    int
	TrendPeriod   int
	RollingWindow int
	Workers       int
}

// DefaultOptions mirrors the dashboard's settings.
func DefaultOptions() Options {
	return Options{
		WindowSize:    calculator.DefaultWindowSize,
		TrendPeriod:   calculator.DefaultTrendPeriod,
		RollingWindow: calculator.DefaultRollingWindow,
		Workers:       calculator.DefaultWorkers,
	}
}

// Collector orchestrates series retrieval and indicator computation.
type Collector struct {
	Source  Source
	Label   string
	Options Options
}

// NewCollector creates a new Collector.
func NewCollector(src Source, label string, opts Options) *Collector {
	return &Collector{Source: src, Label: label, Options: opts}
}

// Collect fetches a series and computes every indicator over it.
func (c *Collector) Collect(ctx context.Context) (*model.Report, error) {
	series, err := c.Source.Series(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch series from %s: %w", c.Source.Name(), err)
	}

	rep := &model.Report{
		Label:       c.Label,
		GeneratedAt: time.Now(),
		Series:      series,
		Hurst:       calculator.HurstDetail(series),
	}

	if vol, err := calculator.Volatility(series); err != nil {
		log.Warn().Err(err).Msg("volatility calculation failed, using 0")
	} else {
		rep.Volatility = vol
	}

	if tr, err := calculator.TrendOverlay(series, c.Options.TrendPeriod); err != nil {
		log.Warn().Err(err).Int("period", c.Options.TrendPeriod).Msg("trend overlay failed")
	} else {
		rep.Trend = tr
	}

	if rh, err := calculator.RollingHurst(series, c.Options.RollingWindow); err != nil {
		log.Warn().Err(err).Int("window", c.Options.RollingWindow).Msg("rolling hurst failed")
	} else {
		rep.RollingHurst = rh
	}

	scores, err := calculator.DetectRegimeChangesConcurrent(ctx, series, c.Options.WindowSize, c.Options.Workers)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("detect regime changes: %w", err)
	case err != nil:
		log.Warn().Err(err).Int("window", c.Options.WindowSize).Msg("regime detection failed, using zero scores")
		scores = make([]float64, len(series))
	}
	rep.RegimeScores = scores

	log.Debug().
		Str("source", c.Source.Name()).
		Int("points", len(series)).
		Float64("hurst", rep.Hurst.Exponent).
		Float64("volatility", rep.Volatility).
		Msg("collected")
	return rep, nil
}

package model

import "time"

// LogLogPoint is one (ln period, ln average R/S) pair of an R/S fit.
type LogLogPoint struct {
	LogPeriod float64
	LogRS     float64
}

// HurstResult holds a Hurst estimate together with the points it was fitted on.
type HurstResult struct {
	Exponent float64
	Periods  []int
	Points   []LogLogPoint
}

// Report holds every number computed for one series.
type Report struct {
	Label        string
	GeneratedAt  time.Time
	Series       []float64
	Trend        []float64 // NaN where the overlay is undefined
	Hurst        HurstResult
	Volatility   float64
	RegimeScores []float64
	RollingHurst []float64 // NaN until the window fills
}

// SweepResult summarizes the Hurst estimates of many generated series.
type SweepResult struct {
	Persistence float64
	Trials      int
	MeanHurst   float64
	StdDevHurst float64
}

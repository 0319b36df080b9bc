package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolatility(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single point", []float64{100}, 0},
		{"flat", []float64{100, 100, 100, 100}, 0},
		{"one return", []float64{100, 110}, 0},
		{"symmetric returns", []float64{100, 110, 99}, 0.1},
		{"constant growth", []float64{100, 110, 121, 133.1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Volatility(tt.series)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestVolatility_ZeroPrice(t *testing.T) {
	_, err := Volatility([]float64{100, 0, 50})
	assert.ErrorIs(t, err, ErrZeroPrice)

	// A zero in the last position is never used as a base.
	got, err := Volatility([]float64{100, 50, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-12)
}

func TestVolatility_Pure(t *testing.T) {
	series := []float64{100, 103, 98, 105, 101, 99, 104}
	a, err := Volatility(series)
	require.NoError(t, err)
	b, err := Volatility(series)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Greater(t, a, 0.0)
}

func TestVolatility_NonFinite(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
	}{
		{"subnormal base", []float64{1e-320, 1, 1e-320, 1}},
		{"deviation overflow", []float64{1, 1e200, 1e200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Volatility(tt.series)
			assert.ErrorIs(t, err, ErrNonFiniteReturn)
			assert.False(t, math.IsNaN(got))
			assert.Equal(t, 0.0, got)
		})
	}
}

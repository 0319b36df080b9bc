package collector

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"FractalSentinel/internal/calculator"
)

// Source supplies the series to analyze.
type Source interface {
	Series(ctx context.Context) ([]float64, error)
	Name() string
}

// SyntheticSource generates a fresh series on every call.
type SyntheticSource struct {
	Length      int
	Persistence float64
	StartValue  float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticSource creates a generator-backed source. A zero seed seeds from the clock.
func NewSyntheticSource(length int, persistence, startValue float64, seed int64) *SyntheticSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SyntheticSource{
		Length:      length,
		Persistence: persistence,
		StartValue:  startValue,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (s *SyntheticSource) Name() string { return "synthetic" }

func (s *SyntheticSource) Series(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.Generate(s.Length, s.Persistence, s.StartValue, s.rng)
}

// StaticSource returns fixed data for development and testing.
type StaticSource struct {
	Data []float64
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Series(_ context.Context) ([]float64, error) {
	if len(s.Data) == 0 {
		return nil, errors.New("static source has no data")
	}
	out := make([]float64, len(s.Data))
	copy(out, s.Data)
	return out, nil
}

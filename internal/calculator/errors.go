package calculator

import "errors"

var (
	ErrInvalidLength      = errors.New("length must be at least 1")
	ErrInvalidPersistence = errors.New("persistence must be within [0, 1]")
	ErrNilRandomSource    = errors.New("random source is nil")
	ErrInvalidWindow      = errors.New("window size is too small")
	ErrInvalidPeriod      = errors.New("period must be positive")
	ErrZeroPrice          = errors.New("zero price in series")
	ErrNonFiniteReturn    = errors.New("return overflows float64")
)

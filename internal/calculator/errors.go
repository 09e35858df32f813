package calculator

import "errors"

var (
	// ErrInsufficientData means a series is too short for the requested computation.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrHorizonOutOfRange means a snapshot offset reaches past the start of the series.
	ErrHorizonOutOfRange = errors.New("horizon out of range")
	// ErrNoOverlap means ticker and benchmark share no trading date.
	ErrNoOverlap = errors.New("no overlapping dates")
	// ErrEmptyInput means statistics were requested over nothing.
	ErrEmptyInput = errors.New("empty input")
)

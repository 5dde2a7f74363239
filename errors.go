package vaf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is the configuration error class: every construction
	// failure satisfies errors.Is(err, ErrInvalidConfig).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must not be negative")

	// ErrIndexFull is returned when the index holds the maximum number of records.
	ErrIndexFull = errors.New("index is full")

	// ErrNotFound is returned by Query(...).First when nothing matches.
	ErrNotFound = errors.New("not found")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return ErrInvalidConfig }

// ErrInvalidMetric indicates an unsupported metric tag or value.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Metric string
	cause  error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric: %q", e.Metric)
}

func (e *ErrInvalidMetric) Unwrap() []error { return []error{ErrInvalidConfig, e.cause} }

// ErrBatch reports the batch position of the record that rejected a batch.
// Nothing from the batch was inserted.
type ErrBatch struct {
	Position int
	ID       uint64
	cause    error
}

func (e *ErrBatch) Error() string {
	return fmt.Sprintf("batch record %d (id %d): %v", e.Position, e.ID, e.cause)
}

func (e *ErrBatch) Unwrap() error { return e.cause }

func checkDimension(expected int, v []float32) error {
	if len(v) != expected {
		return &ErrDimensionMismatch{Expected: expected, Actual: len(v)}
	}
	return nil
}

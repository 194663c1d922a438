package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound           = errors.New("resource not found")
	ErrPredictionNotFound = fmt.Errorf("%w: prediction", ErrNotFound)

	// Record validation errors
	ErrMalformedEncoding = errors.New("malformed draw encoding")
	ErrWrongCardinality  = errors.New("wrong number of values")
	ErrOutOfDomain       = errors.New("value outside domain")
	ErrDuplicateValue    = errors.New("duplicate value in set")

	// Configuration errors
	ErrInvalidConfig    = errors.New("invalid engine configuration")
	ErrNonPositiveAlpha = fmt.Errorf("%w: alpha must be > 0", ErrInvalidConfig)
	ErrNegativeBeta     = fmt.Errorf("%w: beta must be >= 0", ErrInvalidConfig)
	ErrNegativeWeight   = fmt.Errorf("%w: record weights must be >= 0", ErrInvalidConfig)
)

// Error constructors with context
func NewEncodingError(raw string, cause error) error {
	return fmt.Errorf("%w: %q: %v", ErrMalformedEncoding, raw, cause)
}

func NewDomainError(value, lo, hi int) error {
	return fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfDomain, value, lo, hi)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsRecordError(err error) bool {
	return errors.Is(err, ErrMalformedEncoding) ||
		errors.Is(err, ErrWrongCardinality) ||
		errors.Is(err, ErrOutOfDomain) ||
		errors.Is(err, ErrDuplicateValue)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

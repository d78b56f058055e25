package indicator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for non-positive periods and other
	// out-of-range numeric parameters.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData is returned when a series is shorter than the
	// minimum required for the requested period or window.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrShapeMismatch is returned when multi-series inputs disagree in
	// length.
	ErrShapeMismatch = errors.New("input series length mismatch")
)

func errInvalidParameterf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func errInsufficientf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, fmt.Sprintf(format, args...))
}

// validatePeriod rejects non-positive periods.
func validatePeriod(name string, period int) error {
	if period < 1 {
		return errInvalidParameterf("%s must be at least 1, got %d", name, period)
	}
	return nil
}

// validateLen rejects series shorter than min values.
func validateLen(n, min int) error {
	if n < min {
		return errInsufficientf("need at least %d values, have %d", min, n)
	}
	return nil
}

// validateAligned rejects multi-series inputs of unequal length.
func validateAligned(first []float64, rest ...[]float64) error {
	for _, s := range rest {
		if len(s) != len(first) {
			return fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(first), len(s))
		}
	}
	return nil
}

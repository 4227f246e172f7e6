package binomial

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotInteger is returned when a value expected to be an integer has a
	// non-integer type. Floats fail even when numerically integral, e.g. 4.0.
	ErrNotInteger = errors.New("value must be an integer")

	// ErrNegative is returned when an integer parameter is below zero.
	ErrNegative = errors.New("value must be non-negative")

	// ErrOutOfOrder is returned when an ordering constraint x <= y is violated.
	ErrOutOfOrder = errors.New("values out of order")

	// ErrProbRange is returned when a probability falls outside [0, 1].
	ErrProbRange = errors.New("probability must be between 0 and 1, inclusive")
)

// ValidateNonNegativeInteger checks that v carries an integer type and a
// value >= 0. The type check is structural: dynamic values coming out of a
// config file (viper hands them back as interface{}) must actually be
// integers, not floats that happen to hold whole numbers.
func ValidateNonNegativeInteger(v interface{}) error {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return fmt.Errorf("%v: %w", v, ErrNegative)
		}
	case int8:
		if n < 0 {
			return fmt.Errorf("%v: %w", v, ErrNegative)
		}
	case int16:
		if n < 0 {
			return fmt.Errorf("%v: %w", v, ErrNegative)
		}
	case int32:
		if n < 0 {
			return fmt.Errorf("%v: %w", v, ErrNegative)
		}
	case int64:
		if n < 0 {
			return fmt.Errorf("%v: %w", v, ErrNegative)
		}
	case uint, uint8, uint16, uint32, uint64, uintptr:
		// unsigned values cannot be negative
	default:
		return fmt.Errorf("%v: %w", v, ErrNotInteger)
	}
	return nil
}

// ValidateLessEqual checks that x and y are both non-negative integers and
// that x <= y. Checks run in order: x, then y, then the ordering; the first
// failure is returned.
func ValidateLessEqual(x, y interface{}) error {
	if err := ValidateNonNegativeInteger(x); err != nil {
		return err
	}
	if err := ValidateNonNegativeInteger(y); err != nil {
		return err
	}
	xi, err := AsInt64(x)
	if err != nil {
		return err
	}
	yi, err := AsInt64(y)
	if err != nil {
		return err
	}
	if xi > yi {
		return fmt.Errorf("%v must be less than or equal to %v: %w", x, y, ErrOutOfOrder)
	}
	return nil
}

// AsInt64 narrows an integer-typed dynamic value to int64.
func AsInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%v overflows int64: %w", v, ErrNotInteger)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%v: %w", v, ErrNotInteger)
	}
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return fmt.Errorf("%v: %w", p, ErrProbRange)
	}
	return nil
}

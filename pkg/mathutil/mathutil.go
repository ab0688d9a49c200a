// Package mathutil provides pure mathematical helper functions.
package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance below which a floating-point value is
// treated as zero.
const DefaultEpsilon = 1e-9

// maxFactorialInput is the largest n whose factorial is a finite float64;
// 171! exceeds math.MaxFloat64.
const maxFactorialInput = 170

var (
	// ErrOverflow is returned when a result exceeds the finite range of a
	// float64.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrInvalidArgument is returned when an argument lies outside a
	// function's valid domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IsZero reports whether v is within DefaultEpsilon of zero.
func IsZero(v float64) bool {
	return IsZeroWithin(v, DefaultEpsilon)
}

// IsZeroWithin reports whether v is within epsilon of zero.
func IsZeroWithin(v, epsilon float64) bool {
	return math.Abs(v) < epsilon
}

// AreEqual reports whether a and b differ by less than DefaultEpsilon.
func AreEqual(a, b float64) bool {
	return AreEqualWithin(a, b, DefaultEpsilon)
}

// AreEqualWithin reports whether a and b differ by less than epsilon.
func AreEqualWithin(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Factorial returns n! as a float64. It fails with ErrInvalidArgument for
// negative n and with ErrOverflow for n > 170. The product is accumulated
// in a float64 so intermediate values may exceed integer range.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial undefined for negative %d", ErrInvalidArgument, n)
	}

	if n > maxFactorialInput {
		return 0, fmt.Errorf("%w: factorial of %d exceeds float64 range", ErrOverflow, n)
	}

	if n <= 1 {
		return 1, nil
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}

	return result, nil
}

// Power returns base raised to an integer exponent using binary
// exponentiation, O(log exponent) multiplications. The exponent 0 yields 1.
// A negative exponent yields the reciprocal of the positive-exponent result
// and fails with ErrInvalidArgument when the base is approximately zero.
func Power(base float64, exponent int) (float64, error) {
	if exponent == 0 {
		return 1, nil
	}

	if exponent < 0 {
		if IsZero(base) {
			return 0, fmt.Errorf("%w: cannot raise zero to negative power", ErrInvalidArgument)
		}

		inverse, err := Power(base, -exponent)
		if err != nil {
			return 0, err
		}

		return 1 / inverse, nil
	}

	result := 1.0
	current := base

	for exponent > 0 {
		if exponent&1 == 1 {
			result *= current
		}

		current *= current
		exponent >>= 1
	}

	return result, nil
}

// DegreeToRadian converts an angle in degrees to radians.
func DegreeToRadian(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadianToDegree converts an angle in radians to degrees.
func RadianToDegree(radians float64) float64 {
	return radians * 180 / math.Pi
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// IsValidForLog reports whether v is strictly positive and finite.
func IsValidForLog(v float64) bool {
	return v > 0 && IsFinite(v)
}

// IsValidForSqrt reports whether v is non-negative and finite.
func IsValidForSqrt(v float64) bool {
	return v >= 0 && IsFinite(v)
}

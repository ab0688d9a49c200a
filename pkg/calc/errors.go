package calc

import (
	"errors"

	"github.com/aryanc-04/gocalc/pkg/mathutil"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is within
	// the calculator's epsilon of zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned by Add, Subtract and Multiply when the
	// result is infinite. It is the same value as mathutil.ErrOverflow so
	// callers can classify overflow from either package with one sentinel.
	ErrOverflow = mathutil.ErrOverflow
)

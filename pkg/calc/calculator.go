// Package calc provides a basic arithmetic calculator with a single-slot
// memory register and last-result tracking.
package calc

import (
	"fmt"
	"math"

	"github.com/aryanc-04/gocalc/pkg/mathutil"
)

// Calculator performs the four basic arithmetic operations and holds a
// memory value plus the result of the most recent successful operation.
// Failed operations leave both untouched.
//
// A Calculator is not safe for concurrent use; callers sharing an instance
// must serialize access externally.
type Calculator struct {
	memory     float64
	lastResult float64
	epsilon    float64
}

// New returns a Calculator with zeroed memory and last result.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		epsilon: mathutil.DefaultEpsilon,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add returns a + b and records it as the last result. It fails with
// ErrOverflow when the sum is infinite.
func (c *Calculator) Add(a, b float64) (float64, error) {
	result := a + b
	if math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w in addition", ErrOverflow)
	}

	c.lastResult = result

	return result, nil
}

// Subtract returns a - b and records it as the last result. It fails with
// ErrOverflow when the difference is infinite.
func (c *Calculator) Subtract(a, b float64) (float64, error) {
	result := a - b
	if math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w in subtraction", ErrOverflow)
	}

	c.lastResult = result

	return result, nil
}

// Multiply returns a * b and records it as the last result. It fails with
// ErrOverflow when the product is infinite.
func (c *Calculator) Multiply(a, b float64) (float64, error) {
	result := a * b
	if math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w in multiplication", ErrOverflow)
	}

	c.lastResult = result

	return result, nil
}

// Divide returns a / b and records it as the last result. It fails with
// ErrDivisionByZero when b is within epsilon of zero; the check runs before
// the division is attempted. The quotient is not checked for overflow, so
// dividing a huge value by a tiny but legal divisor can record an infinite
// last result.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if mathutil.IsZeroWithin(b, c.epsilon) {
		return 0, fmt.Errorf("%w: divisor %v", ErrDivisionByZero, b)
	}

	result := a / b
	c.lastResult = result

	return result, nil
}

// MemoryStore overwrites the memory register with v.
func (c *Calculator) MemoryStore(v float64) {
	c.memory = v
}

// MemoryRecall returns the memory register.
func (c *Calculator) MemoryRecall() float64 {
	return c.memory
}

// MemoryClear resets the memory register to zero.
func (c *Calculator) MemoryClear() {
	c.memory = 0
}

// Clear resets the last result to zero. The memory register is unaffected.
func (c *Calculator) Clear() {
	c.lastResult = 0
}

// LastResult returns the result of the most recent successful arithmetic
// operation, or zero after New or Clear.
func (c *Calculator) LastResult() float64 {
	return c.lastResult
}

// Epsilon returns the tolerance below which a divisor is treated as zero.
func (c *Calculator) Epsilon() float64 {
	return c.epsilon
}

// SetEpsilon updates the divisor tolerance. Non-positive values are ignored.
func (c *Calculator) SetEpsilon(epsilon float64) {
	if epsilon > 0 {
		c.epsilon = epsilon
	}
}

package calc

// Option configures a Calculator.
type Option func(*Calculator)

// WithEpsilon sets the tolerance below which a divisor is treated as zero.
// The default is mathutil.DefaultEpsilon. Non-positive values are ignored.
func WithEpsilon(epsilon float64) Option {
	return func(c *Calculator) {
		if epsilon > 0 {
			c.epsilon = epsilon
		}
	}
}

package mathutil

import (
	"errors"
	"math"
	"testing"
)

func TestIsZero(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"exact zero", 0, true},
		{"below tolerance", 1e-10, true},
		{"negative below tolerance", -1e-10, true},
		{"at tolerance", 1e-9, false},
		{"above tolerance", 1e-8, false},
		{"one", 1, false},
		{"negative one", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.v); got != tt.want {
				t.Errorf("IsZero(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestIsZeroWithin(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		epsilon float64
		want    bool
	}{
		{"wide tolerance", 0.01, 0.1, true},
		{"narrow tolerance", 0.01, 0.001, false},
		{"zero always passes", 0, 1e-15, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZeroWithin(tt.v, tt.epsilon); got != tt.want {
				t.Errorf("IsZeroWithin(%v, %v) = %v, want %v", tt.v, tt.epsilon, got, tt.want)
			}
		})
	}
}

func TestAreEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"within tolerance", 1.5, 1.5 + 1e-10, true},
		{"outside tolerance", 1.5, 1.5 + 1e-8, false},
		{"different numbers", 1, 2, false},
		{"both zero", 0, 0, true},
		{"sign difference", 1e-10, -1e-10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("AreEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		want    float64
		wantErr error
	}{
		{"zero", 0, 1, nil},
		{"one", 1, 1, nil},
		{"five", 5, 120, nil},
		{"ten", 10, 3628800, nil},
		{"largest representable", 170, 0, nil},
		{"just past the limit", 171, 0, ErrOverflow},
		{"negative", -1, 0, ErrInvalidArgument},
		{"large negative", -100, 0, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Factorial(tt.n)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Factorial(%v) error = %v, want %v", tt.n, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Factorial(%v) unexpected error: %v", tt.n, err)
			}

			if tt.want != 0 && got != tt.want {
				t.Errorf("Factorial(%v) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}

	t.Run("170 is finite", func(t *testing.T) {
		got, err := Factorial(170)
		if err != nil {
			t.Fatalf("Factorial(170) unexpected error: %v", err)
		}

		if !IsFinite(got) {
			t.Errorf("Factorial(170) = %v, want finite", got)
		}
	})
}

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent int
		want     float64
		wantErr  error
	}{
		{"two to the tenth", 2, 10, 1024, nil},
		{"exponent one", 5, 1, 5, nil},
		{"exponent zero", 7, 0, 1, nil},
		{"zero base positive exponent", 0, 5, 0, nil},
		{"negative base odd exponent", -2, 3, -8, nil},
		{"negative base even exponent", -2, 4, 16, nil},
		{"negative exponent", 2, -1, 0.5, nil},
		{"negative exponent cubed", 2, -3, 0.125, nil},
		{"zero base negative exponent", 0, -3, 0, ErrInvalidArgument},
		{"near-zero base negative exponent", 1e-10, -2, 0, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Power(tt.base, tt.exponent)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Power(%v, %v) error = %v, want %v", tt.base, tt.exponent, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Power(%v, %v) unexpected error: %v", tt.base, tt.exponent, err)
			}

			if got != tt.want {
				t.Errorf("Power(%v, %v) = %v, want %v", tt.base, tt.exponent, got, tt.want)
			}
		})
	}

	t.Run("zero exponent ignores base", func(t *testing.T) {
		got, err := Power(math.NaN(), 0)
		if err != nil {
			t.Fatalf("Power(NaN, 0) unexpected error: %v", err)
		}

		if got != 1 {
			t.Errorf("Power(NaN, 0) = %v, want 1", got)
		}
	})
}

func TestAngleConversion(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		radians float64
	}{
		{"zero", 0, 0},
		{"right angle", 90, math.Pi / 2},
		{"straight angle", 180, math.Pi},
		{"full turn", 360, 2 * math.Pi},
		{"negative", -90, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DegreeToRadian(tt.degrees); !AreEqual(got, tt.radians) {
				t.Errorf("DegreeToRadian(%v) = %v, want %v", tt.degrees, got, tt.radians)
			}

			if got := RadianToDegree(tt.radians); !AreEqual(got, tt.degrees) {
				t.Errorf("RadianToDegree(%v) = %v, want %v", tt.radians, got, tt.degrees)
			}
		})
	}

	t.Run("round trip", func(t *testing.T) {
		for _, x := range []float64{0, 1, 45, 123.456, -60, 1e6} {
			if got := RadianToDegree(DegreeToRadian(x)); math.Abs(got-x) > 1e-6 {
				t.Errorf("RadianToDegree(DegreeToRadian(%v)) = %v, want %v", x, got, x)
			}
		}
	})
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"zero", 0, true},
		{"normal", 42.5, true},
		{"max float", math.MaxFloat64, true},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.v); got != tt.want {
				t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestIsValidForLog(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"positive", 1, true},
		{"small positive", 1e-300, true},
		{"zero", 0, false},
		{"negative", -1, false},
		{"infinity", math.Inf(1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidForLog(tt.v); got != tt.want {
				t.Errorf("IsValidForLog(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestIsValidForSqrt(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"zero", 0, true},
		{"positive", 4, true},
		{"negative", -1, false},
		{"infinity", math.Inf(1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidForSqrt(tt.v); got != tt.want {
				t.Errorf("IsValidForSqrt(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

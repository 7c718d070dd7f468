package yamlschema

import (
	"fmt"
	"math"
)

// Number is a tagged numeric value: either an integer or a float. It backs
// every schema numeric bound (minimum, maximum, multipleOf, ...) so that
// loader, validator, and error messages all share one canonical numeric form.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

// IntNumber builds a Number in the integer domain.
func IntNumber(i int64) Number { return Number{i: i} }

// FloatNumber builds a Number in the float domain.
func FloatNumber(f float64) Number { return Number{isFloat: true, f: f} }

// IsFloat reports whether the Number was constructed from a float literal.
func (n Number) IsFloat() bool { return n.isFloat }

// Int64 returns the integer value, converting from float if needed (callers
// are expected to have already checked, e.g. via AsInt, that the value has
// no fractional part).
func (n Number) Int64() int64 {
	if n.isFloat {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns the float64 value of the Number, widening an integer.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// AsInt returns the Number as an int64 and true if it has no fractional
// part (an integer literal, or a float whose Frac() == 0).
func (n Number) AsInt() (int64, bool) {
	if !n.isFloat {
		return n.i, true
	}
	if n.f != float64(int64(n.f)) {
		return 0, false
	}
	return int64(n.f), true
}

// String renders the Number the way it would appear in a message, e.g.
// "5" or "3.14".
func (n Number) String() string {
	if n.isFloat {
		return fmt.Sprintf("%g", n.f)
	}
	return fmt.Sprintf("%d", n.i)
}

// Cmp returns -1, 0, or 1 if n is less than, equal to, or greater than other.
// Mixed int/float domains compare via float widening.
func (n Number) Cmp(other Number) int {
	if !n.isFloat && !other.isFloat {
		switch {
		case n.i < other.i:
			return -1
		case n.i > other.i:
			return 1
		default:
			return 0
		}
	}
	a, b := n.Float64(), other.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// DivisibleBy reports whether n is an exact multiple of m, using integer
// modulo in the integer domain and exact float remainder otherwise.
func (n Number) DivisibleBy(m Number) bool {
	if !n.isFloat && !m.isFloat {
		if m.i == 0 {
			return false
		}
		return n.i%m.i == 0
	}
	mf := m.Float64()
	if mf == 0 {
		return false
	}
	return math.Mod(n.Float64(), mf) == 0
}

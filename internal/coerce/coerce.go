// Package coerce converts arbitrary inputs to the scalar types backing
// attribute values and interval bounds.
//
// Strings are parsed strictly in base 10 after trimming surrounding space;
// an empty string is an error. Numbers outside the range of int are
// rejected rather than wrapped. Every other input goes through
// github.com/spf13/cast.
package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/spf13/cast"
)

// Int converts v to an int. Floats are truncated toward zero.
func Int(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.Conversionf("nil is not an int")
	case string:
		s, err := trimmed(x, "an int")
		if err != nil {
			return 0, err
		}
		i, err := strconv.ParseInt(s, 10, 0)
		if err != nil {
			return 0, errors.AsConversion(err, "parsing %q as an int", x)
		}
		return int(i), nil
	case float64:
		if err := intRange(x); err != nil {
			return 0, err
		}
	case float32:
		if err := intRange(float64(x)); err != nil {
			return 0, err
		}
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, errors.Conversionf("%d overflows int", x)
		}
	case uint:
		if x > math.MaxInt {
			return 0, errors.Conversionf("%d overflows int", x)
		}
	case uint64:
		if x > math.MaxInt {
			return 0, errors.Conversionf("%d overflows int", x)
		}
	case uintptr:
		if x > math.MaxInt {
			return 0, errors.Conversionf("%d overflows int", x)
		}
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, errors.AsConversion(err, "converting %T to an int", v)
	}
	return i, nil
}

// Float converts v to a float64. Strings accept the forms of
// strconv.ParseFloat, including "inf" and "nan".
func Float(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.Conversionf("nil is not a float")
	case string:
		s, err := trimmed(x, "a float")
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.AsConversion(err, "parsing %q as a float", x)
		}
		return f, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errors.AsConversion(err, "converting %T to a float", v)
	}
	return f, nil
}

// Bool converts v to a bool. Numbers are true when non-zero; strings
// accept the forms of strconv.ParseBool.
func Bool(v any) (bool, error) {
	switch x := v.(type) {
	case nil:
		return false, errors.Conversionf("nil is not a bool")
	case string:
		s, err := trimmed(x, "a bool")
		if err != nil {
			return false, err
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, errors.AsConversion(err, "parsing %q as a bool", x)
		}
		return b, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, errors.AsConversion(err, "converting %T to a bool", v)
	}
	return b, nil
}

// String converts v to a string. Booleans render as True and False, the
// spelling Bool parses back.
func String(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", errors.Conversionf("nil is not a string")
	case bool:
		if x {
			return "True", nil
		}
		return "False", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", errors.AsConversion(err, "converting %T to a string", v)
	}
	return s, nil
}

func trimmed(s, what string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errors.Conversionf("empty string is not %s", what)
	}
	return t, nil
}

// intRange rejects floats that have no int counterpart.
func intRange(f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return errors.Conversionf("%v is not an int", f)
	}
	// float64(math.MaxInt) rounds up to 2^63, which is out of range.
	if f < math.MinInt || f >= math.MaxInt {
		return errors.Conversionf("%v overflows int", f)
	}
	return nil
}

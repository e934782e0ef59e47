package galactic

import (
	"reflect"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/coerce"
	"github.com/galactic-lattice/galactic/internal/repr"
)

// Type defines an attribute type. A type must be able to produce a default
// value and to coerce an arbitrary input into one of its values.
//
// The builtin scalar types are Bool, Int, Float and String; the category
// and interval packages provide set-valued and interval-valued types.
type Type interface {
	// Implements the stringer interface. The name is used in renderings and
	// as the registry key.
	String() string

	// Zero returns the default value of the type. It must not fail.
	Zero() any

	// Convert coerces v to a value of the type. Failures wrap
	// errors.ErrConversion.
	Convert(v any) (any, error)

	// Accepts reports whether v is already a value of the type.
	Accepts(v any) bool
}

// SameType reports whether a and b are the same type. Types whose dynamic
// type is not comparable are only the same if they are the same pointer.
func SameType(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// Bool defines the boolean type. Its default value is false.
type Bool struct{}

// Int defines the integer type, stored as a Go int. Its default value is 0.
type Int struct{}

// Float defines the real number type, stored as a float64. Its default
// value is 0.0.
type Float struct{}

// String defines the string type. Its default value is "".
type String struct{}

// Zero Methods
func (Bool) Zero() any   { return false }
func (Int) Zero() any    { return int(0) }
func (Float) Zero() any  { return float64(0.0) }
func (String) Zero() any { return "" }

// String Methods
func (Bool) String() string   { return "bool" }
func (Int) String() string    { return "int" }
func (Float) String() string  { return "float" }
func (String) String() string { return "string" }

// Accepts Methods
func (Bool) Accepts(v any) bool   { return holds[bool](v) }
func (Int) Accepts(v any) bool    { return holds[int](v) }
func (Float) Accepts(v any) bool  { return holds[float64](v) }
func (String) Accepts(v any) bool { return holds[string](v) }

func holds[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

// Convert coerces numbers (non-zero is true) and the strings understood by
// strconv.ParseBool, such as "true", "False" or "1". Other strings,
// including the empty string, are not truthy and fail to convert.
func (t Bool) Convert(v any) (any, error) {
	b, err := coerce.Bool(v)
	if err != nil {
		return nil, errors.Wrapf(err, "converting %s to %s", repr.Of(v), t)
	}
	return b, nil
}

// Convert coerces booleans, integral numbers and base 10 strings. Floats
// are truncated toward zero; infinities, NaN and numbers outside the range
// of int are rejected.
func (t Int) Convert(v any) (any, error) {
	i, err := coerce.Int(v)
	if err != nil {
		return nil, errors.Wrapf(err, "converting %s to %s", repr.Of(v), t)
	}
	return i, nil
}

// Convert coerces booleans, numbers and numeric strings. The empty string
// is rejected.
func (t Float) Convert(v any) (any, error) {
	f, err := coerce.Float(v)
	if err != nil {
		return nil, errors.Wrapf(err, "converting %s to %s", repr.Of(v), t)
	}
	return f, nil
}

// Convert renders scalars and fmt.Stringer values as strings. Booleans
// become "True" or "False", which Bool converts back.
func (t String) Convert(v any) (any, error) {
	s, err := coerce.String(v)
	if err != nil {
		return nil, errors.Wrapf(err, "converting %T to %s", v, t)
	}
	return s, nil
}

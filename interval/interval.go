package interval

import (
	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
)

// Number is the set of ordered numeric domains an interval can range over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Domain describes the numbers an interval type ranges over.
type Domain[N Number] struct {
	// Name of the interval type, e.g. ImpreciseFloat.
	Name string

	// Convert coerces a bound given by the caller to N.
	Convert func(v any) (N, error)

	// Lower and Upper are the bounds of the unbounded interval. They are
	// used when a bound is omitted.
	Lower N
	Upper N
}

// Type is an imprecise number type: its values are intervals over a Domain.
// A Type satisfies the galactic.Type contract.
type Type[N Number] struct {
	d Domain[N]
}

// New returns the interval type over d.
func New[N Number](d Domain[N]) *Type[N] {
	return &Type[N]{d: d}
}

// Name returns the domain name.
func (t *Type[N]) Name() string { return t.d.Name }

func (t *Type[N]) String() string { return t.d.Name }

// Domain returns the domain of t.
func (t *Type[N]) Domain() Domain[N] { return t.d }

// Bound sets one of the bounds given to Make.
type Bound func(b *bounds)

type bounds struct {
	lower, upper       any
	hasLower, hasUpper bool
}

// Lower sets the lower bound. v is converted by the domain.
func Lower(v any) Bound {
	return func(b *bounds) {
		b.lower, b.hasLower = v, true
	}
}

// Upper sets the upper bound. v is converted by the domain.
func Upper(v any) Bound {
	return func(b *bounds) {
		b.upper, b.hasUpper = v, true
	}
}

// Make returns the interval with the given bounds; omitted bounds default to
// the domain bounds. A conversion failure wraps errors.ErrConversion.
//
// An inverted pair (lower > upper) yields the empty interval, represented
// by the domain bounds swapped: (Domain.Upper, Domain.Lower).
func (t *Type[N]) Make(opts ...Bound) (Value[N], error) {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	lower, upper := t.d.Lower, t.d.Upper
	if b.hasLower {
		l, err := t.convert(b.lower)
		if err != nil {
			return Value[N]{}, errors.AsConversion(err, "lower bound of %s", t.d.Name)
		}
		lower = l
	}
	if b.hasUpper {
		u, err := t.convert(b.upper)
		if err != nil {
			return Value[N]{}, errors.AsConversion(err, "upper bound of %s", t.d.Name)
		}
		upper = u
	}
	return t.Between(lower, upper), nil
}

// Between returns the interval [lower:upper], or the empty interval if
// lower > upper.
func (t *Type[N]) Between(lower, upper N) Value[N] {
	if lower > upper {
		lower, upper = t.d.Upper, t.d.Lower
	}
	return Value[N]{typ: t, lower: lower, upper: upper}
}

// Unbounded returns the interval spanning the whole domain.
func (t *Type[N]) Unbounded() Value[N] {
	return Value[N]{typ: t, lower: t.d.Lower, upper: t.d.Upper}
}

// Empty returns the canonical empty interval.
func (t *Type[N]) Empty() Value[N] {
	return Value[N]{typ: t, lower: t.d.Upper, upper: t.d.Lower}
}

func (t *Type[N]) convert(v any) (N, error) {
	if t.d.Convert == nil {
		if n, ok := v.(N); ok {
			return n, nil
		}
		var zero N
		return zero, errors.Conversionf("cannot convert %T to %s", v, t.d.Name)
	}
	return t.d.Convert(v)
}

// Zero returns the unbounded interval.
func (t *Type[N]) Zero() any { return t.Unbounded() }

// From converts v to a value of t. It accepts values of t, values of any
// other interval type (bounds are converted; domain bounds map to domain
// bounds), maps holding the optional keys "lower" and "upper" and scalars,
// which become the degenerate interval [v:v].
func (t *Type[N]) From(v any) (Value[N], error) {
	switch x := v.(type) {
	case nil:
		return Value[N]{}, errors.Conversionf("nil is not a %s", t.d.Name)
	case Value[N]:
		if x.typ == t {
			return x, nil
		}
	case map[string]any:
		return t.fromMap(x)
	}
	if x, ok := v.(bounded); ok {
		return t.rebound(x)
	}
	n, err := t.convert(v)
	if err != nil {
		return Value[N]{}, errors.AsConversion(err, "converting %s to %s", repr.Of(v), t.d.Name)
	}
	return t.Between(n, n), nil
}

func (t *Type[N]) fromMap(m map[string]any) (Value[N], error) {
	var opts []Bound
	for k, v := range m {
		switch k {
		case "lower":
			opts = append(opts, Lower(v))
		case "upper":
			opts = append(opts, Upper(v))
		default:
			return Value[N]{}, errors.Conversionf("unknown bound %q for %s", k, t.d.Name)
		}
	}
	return t.Make(opts...)
}

func (t *Type[N]) rebound(x bounded) (Value[N], error) {
	b := x.bounds()
	if b.empty {
		return t.Empty(), nil
	}
	lower, upper := t.d.Lower, t.d.Upper
	var err error
	if !b.lowerDefault {
		if lower, err = t.convert(b.lower); err != nil {
			return Value[N]{}, errors.AsConversion(err, "lower bound of %s", t.d.Name)
		}
	}
	if !b.upperDefault {
		if upper, err = t.convert(b.upper); err != nil {
			return Value[N]{}, errors.AsConversion(err, "upper bound of %s", t.d.Name)
		}
	}
	return t.Between(lower, upper), nil
}

// Convert is From with an untyped result.
func (t *Type[N]) Convert(v any) (any, error) {
	i, err := t.From(v)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Accepts reports whether v is a value of t.
func (t *Type[N]) Accepts(v any) bool {
	i, ok := v.(Value[N])
	return ok && i.typ == t
}

// bounded is implemented by every Value instantiation, so that intervals
// convert across domains.
type bounded interface {
	bounds() boundsInfo
}

type boundsInfo struct {
	lower, upper               any
	lowerDefault, upperDefault bool
	empty                      bool
}

package interval

import (
	"fmt"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
)

// Value is an interval [Lower:Upper] of a Type. Values are comparable with
// ==; an interval with Lower > Upper is empty.
type Value[N Number] struct {
	typ   *Type[N]
	lower N
	upper N
}

// Type returns the interval type of v.
func (v Value[N]) Type() *Type[N] { return v.typ }

// Lower returns the lower bound.
func (v Value[N]) Lower() N { return v.lower }

// Upper returns the upper bound.
func (v Value[N]) Upper() N { return v.upper }

// IsEmpty reports whether v contains no number.
func (v Value[N]) IsEmpty() bool { return v.lower > v.upper }

func (v Value[N]) bounds() boundsInfo {
	b := boundsInfo{lower: v.lower, upper: v.upper, empty: v.IsEmpty()}
	if v.typ != nil {
		b.lowerDefault = v.lower == v.typ.d.Lower
		b.upperDefault = v.upper == v.typ.d.Upper
	}
	return b
}

func (v Value[N]) check(o Value[N]) error {
	if v.typ == nil || o.typ == nil {
		return errors.TypeMismatchf("interval without type")
	}
	if v.typ != o.typ {
		return errors.TypeMismatchf("%s cannot be combined with %s", v.typ.d.Name, o.typ.d.Name)
	}
	return nil
}

// Equal reports whether v and o have the same bounds. Any two empty
// intervals are equal.
func (v Value[N]) Equal(o Value[N]) (bool, error) {
	if err := v.check(o); err != nil {
		return false, err
	}
	return v.equal(o), nil
}

func (v Value[N]) equal(o Value[N]) bool {
	if v.IsEmpty() && o.IsEmpty() {
		return true
	}
	return v.lower == o.lower && v.upper == o.upper
}

// Le reports whether v is included in o: v.Lower >= o.Lower and
// v.Upper <= o.Upper.
func (v Value[N]) Le(o Value[N]) (bool, error) {
	if err := v.check(o); err != nil {
		return false, err
	}
	return v.lower >= o.lower && v.upper <= o.upper, nil
}

// Lt reports whether v is strictly included in o.
func (v Value[N]) Lt(o Value[N]) (bool, error) {
	le, err := v.Le(o)
	if err != nil || !le {
		return false, err
	}
	return !v.equal(o), nil
}

// Ge reports whether v includes o.
func (v Value[N]) Ge(o Value[N]) (bool, error) {
	if err := v.check(o); err != nil {
		return false, err
	}
	return v.lower <= o.lower && v.upper >= o.upper, nil
}

// Gt reports whether v strictly includes o.
func (v Value[N]) Gt(o Value[N]) (bool, error) {
	ge, err := v.Ge(o)
	if err != nil || !ge {
		return false, err
	}
	return !v.equal(o), nil
}

// And returns the intersection of v and o.
func (v Value[N]) And(o Value[N]) (Value[N], error) {
	if err := v.check(o); err != nil {
		return Value[N]{}, err
	}
	return v.typ.Between(max(v.lower, o.lower), min(v.upper, o.upper)), nil
}

// Or returns the convex hull of v and o: the smallest interval enclosing
// both. For disjoint intervals the gap between them is included.
func (v Value[N]) Or(o Value[N]) (Value[N], error) {
	if err := v.check(o); err != nil {
		return Value[N]{}, err
	}
	switch {
	case v.IsEmpty():
		return o, nil
	case o.IsEmpty():
		return v, nil
	}
	return v.typ.Between(min(v.lower, o.lower), max(v.upper, o.upper)), nil
}

// IsDisjoint reports whether v and o have no number in common. An empty
// interval is disjoint from every interval.
func (v Value[N]) IsDisjoint(o Value[N]) (bool, error) {
	if err := v.check(o); err != nil {
		return false, err
	}
	if v.IsEmpty() || o.IsEmpty() {
		return true, nil
	}
	return v.upper < o.lower || v.lower > o.upper, nil
}

// IsSubset is Le.
func (v Value[N]) IsSubset(o Value[N]) (bool, error) { return v.Le(o) }

// IsSuperset is Ge.
func (v Value[N]) IsSuperset(o Value[N]) (bool, error) { return v.Ge(o) }

// Union folds Or (the convex hull) over others, left to right, starting
// from v.
func (v Value[N]) Union(others ...Value[N]) (Value[N], error) {
	return v.fold(Value[N].Or, others)
}

// Intersection folds And over others, left to right, starting from v.
func (v Value[N]) Intersection(others ...Value[N]) (Value[N], error) {
	return v.fold(Value[N].And, others)
}

func (v Value[N]) fold(op func(Value[N], Value[N]) (Value[N], error), others []Value[N]) (Value[N], error) {
	result := v
	for _, o := range others {
		var err error
		if result, err = op(result, o); err != nil {
			return Value[N]{}, err
		}
	}
	return result, nil
}

// String renders v as [0:10].
func (v Value[N]) String() string {
	return fmt.Sprintf("[%s:%s]", repr.Of(v.lower), repr.Of(v.upper))
}

// GoString renders v as ImpreciseInteger(lower=0, upper=10).
func (v Value[N]) GoString() string {
	name := "Interval"
	if v.typ != nil {
		name = v.typ.d.Name
	}
	return fmt.Sprintf("%s(lower=%s, upper=%s)", name, repr.Of(v.lower), repr.Of(v.upper))
}

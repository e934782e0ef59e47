package category

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
)

// Value is a subset of the universe of its Type. Values are immutable; every
// operation returns a value obtained through the same interning path as
// Type.Of.
type Value[T comparable] struct {
	typ  *Type[T]
	bits *bitset.BitSet
}

// Type returns the category type of v.
func (v *Value[T]) Type() *Type[T] { return v.typ }

// Bits returns a copy of the bit vector of v.
func (v *Value[T]) Bits() *bitset.BitSet { return v.bits.Clone() }

// Contains reports whether item belongs to v. It fails with ErrValue when
// item is not part of the universe.
func (v *Value[T]) Contains(item T) (bool, error) {
	i, ok := v.typ.index[item]
	if !ok {
		return false, errors.Valuef("%s is not an item of %s", repr.Of(item), v.typ.name)
	}
	return v.bits.Test(i), nil
}

// Len returns the number of items of v.
func (v *Value[T]) Len() int { return int(v.bits.Count()) }

// All iterates over the items of v in universe order.
func (v *Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
			if !yield(v.typ.items[i]) {
				return
			}
		}
	}
}

// Items returns the items of v in universe order.
func (v *Value[T]) Items() []T {
	items := make([]T, 0, v.Len())
	for item := range v.All() {
		items = append(items, item)
	}
	return items
}

func (v *Value[T]) check(o *Value[T]) error {
	if o == nil {
		return errors.TypeMismatchf("nil operand for category %s", v.typ.name)
	}
	if o.typ != v.typ {
		return errors.TypeMismatchf("category %s cannot be combined with category %s", v.typ.name, o.typ.name)
	}
	return nil
}

// Equal reports whether v and o hold the same items.
func (v *Value[T]) Equal(o *Value[T]) (bool, error) {
	if err := v.check(o); err != nil {
		return false, err
	}
	return v == o || v.bits.Equal(o.bits), nil
}

// Le reports whether every item of v is in o.
func (v *Value[T]) Le(o *Value[T]) (bool, error) {
	if err := v.check(o); err != nil {
		return false, err
	}
	return v.bits.DifferenceCardinality(o.bits) == 0, nil
}

// Lt reports whether v is a proper subset of o.
func (v *Value[T]) Lt(o *Value[T]) (bool, error) {
	le, err := v.Le(o)
	if err != nil || !le {
		return false, err
	}
	return !v.bits.Equal(o.bits), nil
}

// Ge reports whether every item of o is in v.
func (v *Value[T]) Ge(o *Value[T]) (bool, error) {
	if err := v.check(o); err != nil {
		return false, err
	}
	return o.bits.DifferenceCardinality(v.bits) == 0, nil
}

// Gt reports whether v is a proper superset of o.
func (v *Value[T]) Gt(o *Value[T]) (bool, error) {
	ge, err := v.Ge(o)
	if err != nil || !ge {
		return false, err
	}
	return !v.bits.Equal(o.bits), nil
}

// And returns the intersection of v and o.
func (v *Value[T]) And(o *Value[T]) (*Value[T], error) {
	if err := v.check(o); err != nil {
		return nil, err
	}
	return v.typ.instance(v.bits.Intersection(o.bits)), nil
}

// Or returns the union of v and o.
func (v *Value[T]) Or(o *Value[T]) (*Value[T], error) {
	if err := v.check(o); err != nil {
		return nil, err
	}
	return v.typ.instance(v.bits.Union(o.bits)), nil
}

// Sub returns the items of v that are not in o.
func (v *Value[T]) Sub(o *Value[T]) (*Value[T], error) {
	if err := v.check(o); err != nil {
		return nil, err
	}
	return v.typ.instance(v.bits.Difference(o.bits)), nil
}

// Xor returns the items that are in exactly one of v and o.
func (v *Value[T]) Xor(o *Value[T]) (*Value[T], error) {
	if err := v.check(o); err != nil {
		return nil, err
	}
	return v.typ.instance(v.bits.SymmetricDifference(o.bits)), nil
}

// operand converts an argument of the set methods. Values of another
// category type are rejected; anything else goes through Type.From.
func (v *Value[T]) operand(o any) (*Value[T], error) {
	if c, ok := o.(*Value[T]); ok {
		return c, v.check(c)
	}
	c, err := v.typ.From(o)
	if err != nil {
		return nil, errors.Wrap(errors.ErrTypeMismatch, err.Error())
	}
	return c, nil
}

// IsDisjoint reports whether v has no item in common with o. o is a value
// of the same type or anything Type.From accepts.
func (v *Value[T]) IsDisjoint(o any) (bool, error) {
	c, err := v.operand(o)
	if err != nil {
		return false, err
	}
	return v.bits.IntersectionCardinality(c.bits) == 0, nil
}

// IsSubset is Le with the operand conversion of IsDisjoint.
func (v *Value[T]) IsSubset(o any) (bool, error) {
	c, err := v.operand(o)
	if err != nil {
		return false, err
	}
	return v.Le(c)
}

// IsSuperset is Ge with the operand conversion of IsDisjoint.
func (v *Value[T]) IsSuperset(o any) (bool, error) {
	c, err := v.operand(o)
	if err != nil {
		return false, err
	}
	return v.Ge(c)
}

// SymmetricDifference is Xor with the operand conversion of IsDisjoint.
func (v *Value[T]) SymmetricDifference(o any) (*Value[T], error) {
	c, err := v.operand(o)
	if err != nil {
		return nil, err
	}
	return v.Xor(c)
}

// Union folds Or over others, left to right, starting from v.
func (v *Value[T]) Union(others ...any) (*Value[T], error) {
	return v.fold((*Value[T]).Or, others)
}

// Intersection folds And over others, left to right, starting from v.
func (v *Value[T]) Intersection(others ...any) (*Value[T], error) {
	return v.fold((*Value[T]).And, others)
}

// Difference folds Sub over others, left to right, starting from v.
func (v *Value[T]) Difference(others ...any) (*Value[T], error) {
	return v.fold((*Value[T]).Sub, others)
}

func (v *Value[T]) fold(op func(*Value[T], *Value[T]) (*Value[T], error), others []any) (*Value[T], error) {
	result := v
	for _, o := range others {
		c, err := v.operand(o)
		if err != nil {
			return nil, err
		}
		if result, err = op(result, c); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// String renders v as {'R', 'B'}.
func (v *Value[T]) String() string {
	return "{" + repr.Join(v.Items()) + "}"
}

// GoString renders v as Color({'R', 'B'}).
func (v *Value[T]) GoString() string {
	return fmt.Sprintf("%s(%s)", v.typ.name, v.String())
}

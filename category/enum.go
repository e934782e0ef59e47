package category

import (
	"fmt"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
)

// Enum is an exact category: each value is exactly one item of a fixed,
// non-empty universe. Members are created once per item and shared.
type Enum[T comparable] struct {
	name    string
	members []*Member[T]
	index   map[T]int
}

// Member is one item of an Enum.
type Member[T comparable] struct {
	enum  *Enum[T]
	item  T
	index int
}

// NewEnum derives an exact category called name over items. It fails with
// ErrValue when items is empty.
func NewEnum[T comparable](name string, items []T) (*Enum[T], error) {
	e := &Enum[T]{name: name, index: make(map[T]int, len(items))}
	for _, item := range items {
		if _, ok := e.index[item]; ok {
			continue
		}
		e.index[item] = len(e.members)
		e.members = append(e.members, &Member[T]{enum: e, item: item, index: len(e.members)})
	}
	if len(e.members) == 0 {
		return nil, errors.Valuef("enum %s has no item", name)
	}
	return e, nil
}

// Name returns the name given to NewEnum.
func (e *Enum[T]) Name() string { return e.name }

func (e *Enum[T]) String() string { return e.name }

// Members returns the members in universe order.
func (e *Enum[T]) Members() []*Member[T] {
	return append([]*Member[T](nil), e.members...)
}

// Member returns the member holding item, or ErrValue.
func (e *Enum[T]) Member(item T) (*Member[T], error) {
	i, ok := e.index[item]
	if !ok {
		return nil, errors.Valuef("%s is not an item of %s", repr.Of(item), e.name)
	}
	return e.members[i], nil
}

// Zero returns the first member.
func (e *Enum[T]) Zero() any { return e.members[0] }

// Convert accepts a member of e or one of its items.
func (e *Enum[T]) Convert(v any) (any, error) {
	switch x := v.(type) {
	case *Member[T]:
		if x != nil && x.enum == e {
			return x, nil
		}
		if x != nil {
			v = x.item
		}
	}
	item, ok := v.(T)
	if !ok {
		return nil, errors.Conversionf("cannot convert %T to %s", v, e.name)
	}
	m, err := e.Member(item)
	if err != nil {
		return nil, errors.AsConversion(err, "converting to %s", e.name)
	}
	return m, nil
}

// Accepts reports whether v is a member of e.
func (e *Enum[T]) Accepts(v any) bool {
	m, ok := v.(*Member[T])
	return ok && m != nil && m.enum == e
}

// Item returns the item held by m.
func (m *Member[T]) Item() T { return m.item }

// Index returns the position of the item of m in the universe.
func (m *Member[T]) Index() int { return m.index }

// Enum returns the enum m belongs to.
func (m *Member[T]) Enum() *Enum[T] { return m.enum }

// String returns the item of m as plain text, so Member[string] prints R
// rather than 'R'.
func (m *Member[T]) String() string { return fmt.Sprint(m.item) }

// Repr renders the item of m as a literal, which is how m appears inside
// individuals and tables.
func (m *Member[T]) Repr() string { return repr.Of(m.item) }

// GoString renders m as Color('R').
func (m *Member[T]) GoString() string {
	return fmt.Sprintf("%s(%s)", m.enum.name, repr.Of(m.item))
}

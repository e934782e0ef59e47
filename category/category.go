package category

import (
	"encoding/binary"
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
)

// Type is an imprecise category: its values are the subsets of a fixed,
// ordered universe of items. Each value is stored as a bit vector with one
// bit per universe item, in universe order.
//
// A Type satisfies the galactic.Type contract and can be used as an
// attribute type.
type Type[T comparable] struct {
	name  string
	items []T
	index map[T]uint
	opts  Options

	// instances interns values by bit pattern when opts.Cache is set.
	instances map[string]*Value[T]
}

// Options control how a Type creates its values.
type Options struct {
	// Cache interns values: two values with the same items are the same
	// pointer.
	Cache bool
}

// Option sets a field of Options.
type Option func(o *Options)

// Cache turns value interning on or off.
// Default: off
func Cache(b bool) Option {
	return func(o *Options) {
		o.Cache = b
	}
}

// New derives a category type called name over the universe items.
// Duplicate items are dropped; the first occurrence fixes the item position.
func New[T comparable](name string, items []T, opts ...Option) *Type[T] {
	t := &Type[T]{
		name:      name,
		index:     make(map[T]uint, len(items)),
		instances: map[string]*Value[T]{},
	}
	for _, item := range items {
		if _, ok := t.index[item]; ok {
			continue
		}
		t.index[item] = uint(len(t.items))
		t.items = append(t.items, item)
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Name returns the name given to New.
func (t *Type[T]) Name() string { return t.name }

// String returns the type name.
func (t *Type[T]) String() string { return t.name }

// Universe returns a copy of the items of the category, in order.
func (t *Type[T]) Universe() []T {
	return append([]T(nil), t.items...)
}

// Cached reports whether the type interns its values.
func (t *Type[T]) Cached() bool { return t.opts.Cache }

// Empty returns the value without any item.
func (t *Type[T]) Empty() *Value[T] {
	return t.instance(bitset.New(uint(len(t.items))))
}

// Of returns the value holding the given items. Items outside of the
// universe are ignored.
func (t *Type[T]) Of(items ...T) *Value[T] {
	b := bitset.New(uint(len(t.items)))
	for _, item := range items {
		if i, ok := t.index[item]; ok {
			b.Set(i)
		}
	}
	return t.instance(b)
}

// From converts v to a value of t. Accepted inputs are values of any
// category over T, slices ([]T or []any), sets (map[T]bool, map[T]struct{})
// and iter.Seq[T]. Items outside of the universe are ignored.
func (t *Type[T]) From(v any) (*Value[T], error) {
	switch x := v.(type) {
	case *Value[T]:
		if x == nil {
			return nil, errors.Conversionf("nil value for category %s", t.name)
		}
		if x.typ == t {
			return x, nil
		}
		return t.Of(x.Items()...), nil
	case []T:
		return t.Of(x...), nil
	case []any:
		items := make([]T, 0, len(x))
		for _, e := range x {
			if item, ok := e.(T); ok {
				items = append(items, item)
			}
		}
		return t.Of(items...), nil
	case map[T]bool:
		items := make([]T, 0, len(x))
		for item, in := range x {
			if in {
				items = append(items, item)
			}
		}
		return t.Of(items...), nil
	case map[T]struct{}:
		items := make([]T, 0, len(x))
		for item := range x {
			items = append(items, item)
		}
		return t.Of(items...), nil
	case iter.Seq[T]:
		var items []T
		for item := range x {
			items = append(items, item)
		}
		return t.Of(items...), nil
	}
	return nil, errors.Conversionf("%s: cannot convert %T to category %s", repr.Of(v), v, t.name)
}

// Zero returns the empty value.
func (t *Type[T]) Zero() any { return t.Empty() }

// Convert is From with an untyped result.
func (t *Type[T]) Convert(v any) (any, error) {
	c, err := t.From(v)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Accepts reports whether v is a value of t.
func (t *Type[T]) Accepts(v any) bool {
	c, ok := v.(*Value[T])
	return ok && c != nil && c.typ == t
}

// instance returns the canonical value for b. b must not be modified
// afterwards.
func (t *Type[T]) instance(b *bitset.BitSet) *Value[T] {
	if !t.opts.Cache {
		return &Value[T]{typ: t, bits: b}
	}
	k := key(b)
	if v, ok := t.instances[k]; ok {
		return v
	}
	v := &Value[T]{typ: t, bits: b}
	t.instances[k] = v
	return v
}

func key(b *bitset.BitSet) string {
	words := b.Bytes()
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	return string(buf)
}

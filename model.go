package galactic

import (
	"fmt"
	"iter"
	"strings"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// Model is the ordered set of attributes of a context.
//
// Model mutations cascade into the population: adding an attribute gives
// every individual the default value of its type, retyping converts every
// stored value and removing drops the value from every individual.
type Model struct {
	ctx        *Context
	attributes *orderedmap.OrderedMap[string, *Attribute]
}

// Context returns the owning context.
func (m *Model) Context() *Context { return m.ctx }

// Population returns the population of the owning context.
func (m *Model) Population() *Population { return m.ctx.population }

// Get returns the attribute called name, or ErrNotFound.
func (m *Model) Get(name string) (*Attribute, error) {
	a, ok := m.attributes.Get(name)
	if !ok {
		return nil, errors.NotFoundf("attribute %q", name)
	}
	return a, nil
}

// Has reports whether the model has an attribute called name.
func (m *Model) Has(name string) bool {
	_, ok := m.attributes.Get(name)
	return ok
}

// Len returns the number of attributes.
func (m *Model) Len() int { return m.attributes.Len() }

// Empty reports whether the model has no attribute.
func (m *Model) Empty() bool { return m.attributes.Len() == 0 }

// Names returns the attribute names in order.
func (m *Model) Names() []string {
	names := make([]string, 0, m.attributes.Len())
	for p := m.attributes.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// All iterates over the attributes in order.
func (m *Model) All() iter.Seq2[string, *Attribute] {
	return func(yield func(string, *Attribute) bool) {
		for p := m.attributes.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Set adds the attribute name with type t, or changes its type.
//
//   - A new attribute is appended to the model and every individual gets
//     t.Zero() for it.
//   - An existing attribute with another type keeps its position; every
//     individual's value is converted with t.Convert, falling back to
//     t.Zero() when the conversion fails. A failed conversion never fails
//     Set.
//   - An existing attribute with the same type is left untouched, and so
//     are the values.
func (m *Model) Set(name string, t Type) error {
	if name == "" {
		return errors.Valuef("empty attribute name")
	}
	if t == nil {
		return errors.TypeMismatchf("attribute %q has no type", name)
	}

	old, exists := m.attributes.Get(name)
	if exists && SameType(old.typ, t) {
		return nil
	}

	m.attributes.Set(name, &Attribute{ctx: m.ctx, name: name, typ: t})

	log := m.ctx.logger.With(zap.String("attribute", name), zap.Stringer("type", t))
	if !exists {
		for x := range m.ctx.population.values() {
			x.values[name] = t.Zero()
		}
		log.Debug("attribute added", zap.Int("individuals", m.ctx.population.Len()))
		return nil
	}

	fallbacks := 0
	for x := range m.ctx.population.values() {
		v, err := retype(t, x.values[name])
		if err != nil {
			fallbacks++
			log.Debug("value reset to default",
				zap.String("individual", x.id),
				zap.Error(err))
			v = t.Zero()
		}
		x.values[name] = v
	}
	log.Debug("attribute retyped",
		zap.Stringer("previous", old.typ),
		zap.Int("individuals", m.ctx.population.Len()),
		zap.Int("fallbacks", fallbacks))
	return nil
}

// retype converts v to t. Any failure, including a panicking type, is
// reported as an error.
func retype(t Type, v any) (converted any, err error) {
	defer func() {
		if r := recover(); r != nil {
			converted, err = nil, errors.Conversionf("converting to %s: %v", t, r)
		}
	}()

	converted, err = t.Convert(v)
	if err != nil {
		return nil, err
	}
	if !t.Accepts(converted) {
		return nil, errors.Conversionf("%s returned a %T", t, converted)
	}
	return converted, nil
}

// Delete removes the attribute called name and its value from every
// individual. It fails with ErrNotFound if there is no such attribute.
func (m *Model) Delete(name string) error {
	if _, ok := m.attributes.Delete(name); !ok {
		return errors.NotFoundf("attribute %q", name)
	}
	for x := range m.ctx.population.values() {
		if err := x.deleteValue(name); err != nil {
			return err
		}
	}
	m.ctx.logger.Debug("attribute removed",
		zap.String("attribute", name),
		zap.Int("individuals", m.ctx.population.Len()))
	return nil
}

// String renders m as {'flag': bool, 'count': int}.
func (m *Model) String() string {
	parts := make([]string, 0, m.attributes.Len())
	for p := m.attributes.Oldest(); p != nil; p = p.Next() {
		parts = append(parts, fmt.Sprintf("%s: %s", repr.Quote(p.Key), p.Value.typ))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

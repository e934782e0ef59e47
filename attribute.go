package galactic

import (
	"fmt"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
)

// Attribute is a named, typed column of a model. An attribute is replaced
// when its type changes; the replaced attribute keeps reporting the old
// type but reads and writes by name still reach the current values.
type Attribute struct {
	ctx  *Context
	name string
	typ  Type
}

// AttributeKey identifies an attribute. Keys are comparable and can be
// used as map keys.
type AttributeKey struct {
	Context *Context
	Name    string
}

// Name returns the name of a.
func (a *Attribute) Name() string { return a.name }

// Type returns the type of a.
func (a *Attribute) Type() Type { return a.typ }

// Context returns the owning context.
func (a *Attribute) Context() *Context { return a.ctx }

// Model returns the model of the owning context.
func (a *Attribute) Model() *Model { return a.ctx.model }

// Population returns the population of the owning context.
func (a *Attribute) Population() *Population { return a.ctx.population }

// Key returns the identity of a.
func (a *Attribute) Key() AttributeKey {
	return AttributeKey{Context: a.ctx, Name: a.name}
}

// Equal reports whether a and b have the same name in the same context.
func (a *Attribute) Equal(b *Attribute) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}

// Value returns the value of a held by x. It fails with ErrNotFound if x
// belongs to another context.
func (a *Attribute) Value(x *Individual) (any, error) {
	if x == nil {
		return nil, errors.NotFoundf("nil individual")
	}
	if x.ctx != a.ctx {
		return nil, errors.NotFoundf("individual %q belongs to another context", x.id)
	}
	return x.Value(a)
}

// Get returns the value of a held by the individual id.
func (a *Attribute) Get(id string) (any, error) {
	x, err := a.ctx.population.Get(id)
	if err != nil {
		return nil, err
	}
	return x.Get(a.name)
}

// Set stores v for a in the individual id.
func (a *Attribute) Set(id string, v any) error {
	x, err := a.ctx.population.Get(id)
	if err != nil {
		return err
	}
	return x.Set(a.name, v)
}

// Len returns the number of values, which is the number of individuals.
func (a *Attribute) Len() int { return a.ctx.population.Len() }

// Identifiers returns the identifiers of the individuals holding a value of
// a, in population order.
func (a *Attribute) Identifiers() []string { return a.ctx.population.Identifiers() }

// String renders a as {'name': 'flag', 'type': bool}.
func (a *Attribute) String() string {
	return fmt.Sprintf("{'name': %s, 'type': %s}", repr.Quote(a.name), a.typ)
}

// coerce returns v as a value of the current type of the attribute.
func (a *Attribute) coerce(v any) (any, error) {
	t := a.typ
	if cur, ok := a.ctx.model.attributes.Get(a.name); ok {
		t = cur.typ
	}
	if t.Accepts(v) {
		return v, nil
	}
	converted, err := t.Convert(v)
	if err != nil {
		return nil, errors.Wrapf(err, "attribute %q", a.name)
	}
	if !t.Accepts(converted) {
		return nil, errors.Conversionf("attribute %q: %s returned a %T", a.name, t, converted)
	}
	return converted, nil
}

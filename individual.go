package galactic

import (
	"iter"
	"strings"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
	"go.uber.org/zap"
)

// Individual is an element of a population. It holds exactly one value per
// attribute of the model.
type Individual struct {
	ctx    *Context
	id     string
	values map[string]any
}

// IndividualKey identifies an individual. Keys are comparable and can be
// used as map keys.
type IndividualKey struct {
	Context    *Context
	Identifier string
}

// Identifier returns the identifier of x.
func (x *Individual) Identifier() string { return x.id }

// Context returns the owning context.
func (x *Individual) Context() *Context { return x.ctx }

// Population returns the population of the owning context.
func (x *Individual) Population() *Population { return x.ctx.population }

// Model returns the model of the owning context.
func (x *Individual) Model() *Model { return x.ctx.model }

// Key returns the identity of x.
func (x *Individual) Key() IndividualKey {
	return IndividualKey{Context: x.ctx, Identifier: x.id}
}

// Equal reports whether x and y have the same identifier in the same
// context.
func (x *Individual) Equal(y *Individual) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Key() == y.Key()
}

// Get returns the value of the attribute called name. It fails with
// ErrNotFound if the model has no such attribute.
func (x *Individual) Get(name string) (any, error) {
	if !x.ctx.model.Has(name) {
		return nil, errors.NotFoundf("attribute %q", name)
	}
	return x.values[name], nil
}

// Value returns the value of a. It fails with ErrNotFound if a belongs to
// another context or is no longer in the model.
func (x *Individual) Value(a *Attribute) (any, error) {
	if a == nil {
		return nil, errors.NotFoundf("nil attribute")
	}
	if a.ctx != x.ctx {
		return nil, errors.NotFoundf("attribute %q belongs to another context", a.name)
	}
	return x.Get(a.name)
}

// Set stores v for the attribute called name, converting it to the
// attribute type if needed. On failure the stored value is unchanged.
func (x *Individual) Set(name string, v any) error {
	if cur, ok := x.ctx.population.individuals.Get(x.id); !ok || cur != x {
		return errors.NotFoundf("individual %q is not in the population", x.id)
	}
	a, err := x.ctx.model.Get(name)
	if err != nil {
		return err
	}
	converted, err := a.coerce(v)
	if err != nil {
		return errors.Wrapf(err, "individual %q", x.id)
	}
	x.values[name] = converted
	x.ctx.logger.Debug("value set",
		zap.String("individual", x.id),
		zap.String("attribute", name))
	return nil
}

// deleteValue removes a value when its attribute leaves the model.
// Removing the value of an attribute that is still in the model would break
// the one-value-per-attribute rule and is refused.
func (x *Individual) deleteValue(name string) error {
	if x.ctx.model.Has(name) {
		return errors.Invariantf("attribute %q is still in the model", name)
	}
	delete(x.values, name)
	return nil
}

// Len returns the number of values, which is the number of attributes.
func (x *Individual) Len() int { return x.ctx.model.Len() }

// Names returns the attribute names, in model order.
func (x *Individual) Names() []string { return x.ctx.model.Names() }

// All iterates over the values in model order.
func (x *Individual) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for name := range x.ctx.model.All() {
			if !yield(name, x.values[name]) {
				return
			}
		}
	}
}

// String renders x as {'flag': False, 'count': 0}.
func (x *Individual) String() string {
	parts := []string{}
	for name, v := range x.All() {
		parts = append(parts, repr.Quote(name)+": "+repr.Of(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

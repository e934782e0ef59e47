package galactic

import (
	"strings"

	"github.com/galactic-lattice/galactic/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// A Context couples a Model (the attributes) with a Population (the
// individuals). Both are created with the context and stay attached to it
// for its whole lifetime.
//
// Two contexts are never equal, even when they hold the same attributes and
// individuals: attributes and individuals compare by name and owning
// context.
//
// A Context is not safe for concurrent use.
type Context struct {
	model      *Model
	population *Population
	logger     *zap.Logger
}

// Owned is implemented by the elements of a context: attributes and
// individuals.
type Owned interface {
	Context() *Context
}

// New creates a context. The attributes of def are added to the model in
// order, then the individuals given with WithIdentifiers and WithIndividual
// are added to the population in option order. The first failure is
// returned.
func New(def Definition, opts ...Option) (*Context, error) {
	o := Options{}
	applyOptions(&o, opts...)
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	c := &Context{logger: o.Logger}
	c.model = &Model{ctx: c, attributes: orderedmap.New[string, *Attribute]()}
	c.population = &Population{ctx: c, individuals: orderedmap.New[string, *Individual]()}

	for _, e := range def.Elements {
		if err := c.model.Set(e.Name, e.Type); err != nil {
			return nil, errors.Wrapf(err, "defining attribute %q", e.Name)
		}
	}

	for _, s := range o.individuals {
		if err := c.population.Set(s.id, s.values); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Model returns the attributes of the context.
func (c *Context) Model() *Model { return c.model }

// Population returns the individuals of the context.
func (c *Context) Population() *Population { return c.population }

// Contains reports whether e belongs to c.
func (c *Context) Contains(e Owned) bool {
	return e != nil && e.Context() == c
}

// Empty reports whether c has no attribute or no individual.
func (c *Context) Empty() bool {
	return c.population.Empty() || c.model.Empty()
}

// String renders c as {'population': ['x'], 'model': {'flag': bool}}.
func (c *Context) String() string {
	x := strings.Builder{}
	x.WriteString("{'population': ")
	x.WriteString(c.population.String())
	x.WriteString(", 'model': ")
	x.WriteString(c.model.String())
	x.WriteString("}")
	return x.String()
}

package galactic

import (
	"iter"
	"slices"
	"strings"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/repr"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// Population is the ordered set of individuals of a context.
type Population struct {
	ctx         *Context
	individuals *orderedmap.OrderedMap[string, *Individual]
}

// Context returns the owning context.
func (p *Population) Context() *Context { return p.ctx }

// Model returns the model of the owning context.
func (p *Population) Model() *Model { return p.ctx.model }

// Get returns the individual identified by id, or ErrNotFound.
func (p *Population) Get(id string) (*Individual, error) {
	x, ok := p.individuals.Get(id)
	if !ok {
		return nil, errors.NotFoundf("individual %q", id)
	}
	return x, nil
}

// Has reports whether an individual is identified by id.
func (p *Population) Has(id string) bool {
	_, ok := p.individuals.Get(id)
	return ok
}

// Len returns the number of individuals.
func (p *Population) Len() int { return p.individuals.Len() }

// Empty reports whether the population has no individual.
func (p *Population) Empty() bool { return p.individuals.Len() == 0 }

// Identifiers returns the identifiers in insertion order.
func (p *Population) Identifiers() []string {
	ids := make([]string, 0, p.individuals.Len())
	for pair := p.individuals.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// All iterates over the individuals in insertion order.
func (p *Population) All() iter.Seq2[string, *Individual] {
	return func(yield func(string, *Individual) bool) {
		for pair := p.individuals.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

func (p *Population) values() iter.Seq[*Individual] {
	return func(yield func(*Individual) bool) {
		for pair := p.individuals.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

// Set creates the individual id, or updates it if it exists, with the given
// values. A new individual holds the default value of every attribute that
// values does not mention.
//
// Set is atomic: every value is converted before anything is stored, and
// if one of them fails (unknown attribute, failed conversion) neither the
// population nor the individual changes.
func (p *Population) Set(id string, values Values) error {
	staged, err := p.stage(values)
	if err != nil {
		return errors.Wrapf(err, "individual %q", id)
	}

	x, exists := p.individuals.Get(id)
	if !exists {
		x = &Individual{ctx: p.ctx, id: id, values: make(map[string]any, p.ctx.model.Len())}
		for name, a := range p.ctx.model.All() {
			x.values[name] = a.typ.Zero()
		}
		p.individuals.Set(id, x)
	}
	for name, v := range staged {
		x.values[name] = v
	}

	p.ctx.logger.Debug("individual set",
		zap.String("individual", id),
		zap.Bool("created", !exists),
		zap.Int("values", len(staged)))
	return nil
}

// stage converts values without storing them. Unknown names are reported
// in sorted order.
func (p *Population) stage(values Values) (map[string]any, error) {
	if len(values) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	staged := make(map[string]any, len(values))
	for _, name := range names {
		a, err := p.ctx.model.Get(name)
		if err != nil {
			return nil, err
		}
		v, err := a.coerce(values[name])
		if err != nil {
			return nil, err
		}
		staged[name] = v
	}
	return staged, nil
}

// Delete removes the individual id. It fails with ErrNotFound if there is
// no such individual. The removed individual is detached: reading it still
// works but writing to it fails.
func (p *Population) Delete(id string) error {
	if _, ok := p.individuals.Delete(id); !ok {
		return errors.NotFoundf("individual %q", id)
	}
	p.ctx.logger.Debug("individual removed", zap.String("individual", id))
	return nil
}

// String renders p as ['x', 'y'].
func (p *Population) String() string {
	ids := p.Identifiers()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = repr.Quote(id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

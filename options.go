package galactic

import (
	"go.uber.org/zap"
)

// Values holds attribute values keyed by attribute name. It is used to
// create or update an individual; attributes that are not mentioned keep
// their current (or default) value.
type Values map[string]any

// See the functional definitions below for the meaning.
type Options struct {
	Logger *zap.Logger

	individuals []seed
}

type seed struct {
	id     string
	values Values
}

type Option func(o *Options)

// Given an array of Option functions, apply their effect
// on the Options struct.
func applyOptions(o *Options, opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithLogger sets the logger receiving the debug trace of model and
// population mutations.
// Default: zap.NewNop()
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithIdentifiers adds individuals holding default values for every
// attribute.
func WithIdentifiers(ids ...string) Option {
	return func(o *Options) {
		for _, id := range ids {
			o.individuals = append(o.individuals, seed{id: id})
		}
	}
}

// WithIndividual adds (or updates, if the identifier was given before) an
// individual with initial values.
func WithIndividual(id string, values Values) Option {
	return func(o *Options) {
		o.individuals = append(o.individuals, seed{id: id, values: values})
	}
}

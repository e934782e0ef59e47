package galactic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/galactic-lattice/galactic/category"
	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/interval"
)

// Definition lists the attributes of a model, in order.
type Definition struct {
	Elements []Element
}

// Element defines a named attribute in a definition.
type Element struct {
	// Name of the attribute; unique within a definition.
	Name string

	// One of the Type interface implementations.
	Type Type
}

// Define builds a definition from alternating names and types:
//
//	galactic.Define("flag", galactic.Bool{}, "count", galactic.Int{})
//
// It panics if pairs is not a sequence of (string, Type) pairs.
func Define(pairs ...any) Definition {
	if len(pairs)%2 != 0 {
		panic("galactic.Define: odd number of arguments")
	}
	d := Definition{}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("galactic.Define: argument %d is %T, want string", i, pairs[i]))
		}
		t, ok := pairs[i+1].(Type)
		if !ok {
			panic(fmt.Sprintf("galactic.Define: argument %d is %T, want galactic.Type", i+1, pairs[i+1]))
		}
		d.Elements = append(d.Elements, Element{Name: name, Type: t})
	}
	return d
}

func (d Definition) String() string {
	x := strings.Builder{}
	for _, e := range d.Elements {
		x.WriteString(e.String())
		x.WriteString("\n")
	}
	return x.String()
}

func (e Element) String() string {
	return fmt.Sprintf("  %s (%s)", e.Name, e.Type)
}

// Registry maps type names to types. A zero Registry is not usable; create
// one with NewRegistry.
type Registry struct {
	types map[string]Type
}

// NewRegistry returns a registry holding the builtin types: bool, int,
// float, string, ImpreciseBoolean, ImpreciseFloat and ImpreciseInteger.
func NewRegistry() *Registry {
	r := &Registry{types: map[string]Type{}}
	for _, t := range []Type{
		Bool{}, Int{}, Float{}, String{},
		category.Boolean, interval.Float, interval.Integer,
	} {
		r.types[t.String()] = t
	}
	return r
}

// Register adds types under their String() name. It fails with ErrValue if
// a different type is already registered under the same name.
func (r *Registry) Register(types ...Type) error {
	for _, t := range types {
		if t == nil {
			return errors.TypeMismatchf("nil type")
		}
		name := t.String()
		if name == "" {
			return errors.Valuef("type %T has no name", t)
		}
		if old, ok := r.types[name]; ok && !SameType(old, t) {
			return errors.Valuef("type %s already registered", name)
		}
		r.types[name] = t
	}
	return nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for k := range r.types {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ParseType parses a string that represents a type and returns the type.
// Registered names are returned as is. Inline categories over strings are
// written category(R, G, B) for an imprecise category and enum(R, G, B) for
// an exact one; they are registered under their canonical spelling, so
// parsing the same spelling twice returns the same type.
func (r *Registry) ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if t, ok := r.types[s]; ok {
		return t, nil
	}

	if strings.HasPrefix(s, "category(") {
		return r.parseCategory(s, "category")
	}

	if strings.HasPrefix(s, "enum(") {
		return r.parseCategory(s, "enum")
	}

	return nil, errors.NotFoundf("unrecognized type: %s", s)
}

// parseCategory parses kind(item, item, ...). The canonical spelling is
// kind(item, item) with the items trimmed and deduplicated.
func (r *Registry) parseCategory(s, kind string) (Type, error) {
	startParen := strings.Index(s, "(")
	endParen := strings.LastIndex(s, ")")

	if startParen == -1 || endParen != len(s)-1 || startParen > endParen {
		return nil, errors.Valuef("bad %s specification: %s", kind, s)
	}

	var items []string
	seen := map[string]bool{}
	for _, item := range strings.Split(s[startParen+1:endParen], ",") {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
	}

	name := kind + "(" + strings.Join(items, ", ") + ")"
	if t, ok := r.types[name]; ok {
		return t, nil
	}

	var t Type
	switch kind {
	case "enum":
		e, err := category.NewEnum(name, items)
		if err != nil {
			return nil, err
		}
		t = e
	default:
		t = category.New(name, items, category.Cache(true))
	}
	r.types[name] = t
	return t, nil
}

// ParseType parses s with a fresh registry holding only the builtin types.
func ParseType(s string) (Type, error) {
	return NewRegistry().ParseType(s)
}

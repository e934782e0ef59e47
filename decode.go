package galactic

import (
	"io"

	"github.com/galactic-lattice/galactic/errors"
	"gopkg.in/yaml.v3"
)

// document is the YAML layout read by Decode:
//
//	types:
//	  color: category(R, G, B)
//	definition:
//	  flag: bool
//	  paint: color
//	  size: ImpreciseFloat
//	individuals:
//	  a: {flag: true, paint: [R, G], size: {lower: 1, upper: 2}}
//	  b: {}
//
// individuals may also be a plain list of identifiers.
type document struct {
	Types       yaml.Node `yaml:"types"`
	Definition  yaml.Node `yaml:"definition"`
	Individuals yaml.Node `yaml:"individuals"`
}

// Decode reads a context from YAML. Type specifications are resolved by the
// names declared under types first, then by reg (a fresh registry if nil).
// The attributes are added in document order, then the individuals; opts
// are applied before the individuals of the document.
func Decode(r io.Reader, reg *Registry, opts ...Option) (*Context, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Valuef("decoding context: %v", err)
	}

	d := decoder{reg: reg, aliases: map[string]Type{}}
	if err := d.types(&doc.Types); err != nil {
		return nil, err
	}
	def, err := d.definition(&doc.Definition)
	if err != nil {
		return nil, err
	}
	seeds, err := d.individuals(&doc.Individuals)
	if err != nil {
		return nil, err
	}
	return New(def, append(opts, seeds...)...)
}

type decoder struct {
	reg     *Registry
	aliases map[string]Type
}

func (d *decoder) resolve(n *yaml.Node) (Type, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, errors.TypeMismatchf("line %d: type specification must be a string", n.Line)
	}
	if t, ok := d.aliases[n.Value]; ok {
		return t, nil
	}
	t, err := d.reg.ParseType(n.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", n.Line)
	}
	return t, nil
}

func (d *decoder) types(n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return errors.TypeMismatchf("line %d: types must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		t, err := d.resolve(n.Content[i+1])
		if err != nil {
			return err
		}
		d.aliases[n.Content[i].Value] = t
	}
	return nil
}

func (d *decoder) definition(n *yaml.Node) (Definition, error) {
	def := Definition{}
	if isNull(n) {
		return def, nil
	}
	if n.Kind != yaml.MappingNode {
		return def, errors.TypeMismatchf("line %d: definition must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		t, err := d.resolve(n.Content[i+1])
		if err != nil {
			return def, errors.Wrapf(err, "attribute %q", n.Content[i].Value)
		}
		def.Elements = append(def.Elements, Element{Name: n.Content[i].Value, Type: t})
	}
	return def, nil
}

func (d *decoder) individuals(n *yaml.Node) ([]Option, error) {
	var opts []Option
	switch {
	case isNull(n):
	case n.Kind == yaml.SequenceNode:
		for _, id := range n.Content {
			if id.Kind != yaml.ScalarNode {
				return nil, errors.TypeMismatchf("line %d: identifier must be a scalar", id.Line)
			}
			opts = append(opts, WithIdentifiers(id.Value))
		}
	case n.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			id, body := n.Content[i].Value, n.Content[i+1]
			if isNull(body) {
				opts = append(opts, WithIdentifiers(id))
				continue
			}
			if body.Kind != yaml.MappingNode {
				return nil, errors.TypeMismatchf("line %d: values of %q must be a mapping", body.Line, id)
			}
			values := Values{}
			if err := body.Decode(&values); err != nil {
				return nil, errors.TypeMismatchf("line %d: %v", body.Line, err)
			}
			opts = append(opts, WithIndividual(id, values))
		}
	default:
		return nil, errors.TypeMismatchf("line %d: individuals must be a sequence or a mapping", n.Line)
	}
	return opts, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

package galactic_test

import (
	"fmt"
	"strings"

	"github.com/galactic-lattice/galactic"
	"github.com/galactic-lattice/galactic/category"
	"github.com/galactic-lattice/galactic/interval"
)

// Example showing how the population follows changes of the model
func Example() {

	// Step 1: Define the attributes
	def := galactic.Define(
		"flag", galactic.Bool{},
		"count", galactic.Int{},
	)

	// Step 2: Create the context with an individual
	ctx, err := galactic.New(def, galactic.WithIdentifiers("x"))
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := ctx.Population().Get("x")
	fmt.Println(x)

	// Step 3: Write a value; it is converted to the attribute type
	if err := x.Set("count", "12"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)

	// Step 4: Change the model
	_ = ctx.Model().Set("flag", galactic.Int{})
	_ = ctx.Model().Set("size", interval.Integer)
	_ = ctx.Model().Delete("count")
	fmt.Println(x)
	fmt.Println(ctx)

	// Output:
	// {'flag': False, 'count': 0}
	// {'flag': False, 'count': 12}
	// {'flag': 0, 'size': [-9223372036854775807:9223372036854775807]}
	// {'population': ['x'], 'model': {'flag': int, 'size': ImpreciseInteger}}
}

// Example showing category values held by individuals
func Example_category() {
	color := category.New("Color", []string{"R", "G", "B"}, category.Cache(true))

	ctx, _ := galactic.New(galactic.Define("color", color),
		galactic.WithIndividual("a", galactic.Values{"color": []string{"R", "G"}}),
		galactic.WithIndividual("b", galactic.Values{"color": []string{"G", "B"}}),
	)

	attr, _ := ctx.Model().Get("color")
	a, _ := attr.Get("a")
	b, _ := attr.Get("b")
	both, _ := a.(*category.Value[string]).And(b.(*category.Value[string]))
	fmt.Println(both)
	fmt.Println(both == color.Of("G"))
	// Output:
	// {'G'}
	// true
}

// Example loading a context from YAML
func ExampleDecode() {
	doc := `
definition:
  flag: bool
  color: category(R, G, B)
individuals:
  a: {flag: true, color: [B]}
  b: {}
`
	ctx, err := galactic.Decode(strings.NewReader(doc), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for id, x := range ctx.Population().All() {
		fmt.Println(id, x)
	}
	// Output:
	// a {'flag': True, 'color': {'B'}}
	// b {'flag': False, 'color': {}}
}

func ExampleModel_Set() {
	ctx, _ := galactic.New(galactic.Define("v", galactic.String{}),
		galactic.WithIndividual("a", galactic.Values{"v": "2.5"}),
		galactic.WithIndividual("b", galactic.Values{"v": "many"}),
	)

	// "many" is not a number: b gets the default value
	_ = ctx.Model().Set("v", galactic.Float{})
	for id, x := range ctx.Population().All() {
		fmt.Println(id, x)
	}
	// Output:
	// a {'v': 2.5}
	// b {'v': 0.0}
}

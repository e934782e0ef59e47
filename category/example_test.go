package category_test

import (
	"fmt"

	"github.com/galactic-lattice/galactic/category"
)

func Example() {
	color := category.New("Color", []string{"R", "G", "B"}, category.Cache(true))

	warm := color.Of("R")
	mixed, _ := warm.Union([]string{"G"})
	fmt.Println(mixed)

	sub, _ := warm.IsSubset(mixed)
	fmt.Println(sub)

	green, _ := mixed.Sub(color.Of("R"))
	fmt.Printf("%#v\n", green)
	// Output:
	// {'R', 'G'}
	// true
	// Color({'G'})
}

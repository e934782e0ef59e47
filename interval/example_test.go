package interval_test

import (
	"fmt"

	"github.com/galactic-lattice/galactic/interval"
)

func Example() {
	age, _ := interval.Integer.Make(interval.Lower(18), interval.Upper(65))
	fmt.Println(age)

	teen := interval.Integer.Between(13, 19)
	both, _ := age.And(teen)
	fmt.Printf("%#v\n", both)

	hull, _ := teen.Or(interval.Integer.Between(30, 40))
	fmt.Println(hull)
	// Output:
	// [18:65]
	// ImpreciseInteger(lower=18, upper=19)
	// [13:40]
}

// Package category provides finite-set value types.
//
// A Type is an imprecise category: a value is any subset of a fixed universe
// of items, stored as a bit vector. Values support the usual set algebra:
//
//	Color := category.New("Color", []string{"R", "G", "B"})
//	rg := Color.Of("R", "G")
//	gb := Color.Of("G", "B")
//	g, _ := rg.And(gb) // {'G'}
//
// Combining values of two different category types fails with
// errors.ErrTypeMismatch, even when both types share the same items.
//
// With Cache(true), equal values are the same pointer, so identity
// comparison is enough:
//
//	Color := category.New("Color", []string{"R", "G", "B"}, category.Cache(true))
//	Color.Of("R") == Color.Of("R") // true
//
// An Enum is an exact category: a value is exactly one item of the universe
// and the default value is the first item.
//
// Both Type and Enum satisfy the galactic.Type contract, so they can be used
// as attribute types.
package category

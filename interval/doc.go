// Package interval provides imprecise numbers: closed intervals over an
// ordered numeric domain.
//
// A Type is created from a Domain giving the conversion of bounds and the
// bounds of the unbounded interval. Float and Integer are predefined:
//
//	i, _ := interval.Float.Make(interval.Lower(5), interval.Upper(10)) // [5.0:10.0]
//	all := interval.Float.Unbounded()                                  // [-inf:inf]
//
// Order relations are inclusion: a.Le(b) holds when a is inside b. And is
// the intersection; Or is the convex hull, not a set union: the hull of
// [0:1] and [5:6] is [0:6].
//
// An inverted pair of bounds makes the empty interval, stored as the domain
// bounds swapped. Every interval with Lower > Upper is treated as empty:
// empty intervals are equal to each other and disjoint from everything.
package interval

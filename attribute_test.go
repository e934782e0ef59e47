package galactic_test

import (
	"testing"

	"github.com/galactic-lattice/galactic"
	"github.com/galactic-lattice/galactic/category"
	"github.com/galactic-lattice/galactic/errors"
	"github.com/matryer/is"
)

func TestAttribute(t *testing.T) {
	is := is.New(t)
	c := flagCount(t, galactic.WithIdentifiers("x", "y"))
	a, err := c.Model().Get("count")
	is.NoErr(err)

	is.Equal(a.Name(), "count")
	is.Equal(a.Type().String(), "int")
	is.True(a.Context() == c)
	is.True(a.Model() == c.Model())
	is.True(a.Population() == c.Population())
	is.Equal(a.Len(), 2)
	is.Equal(a.Identifiers(), []string{"x", "y"})
	is.Equal(a.String(), "{'name': 'count', 'type': int}")

	is.NoErr(a.Set("y", 7.0))
	v, err := a.Get("y")
	is.NoErr(err)
	is.Equal(v, 7)

	err = a.Set("z", 1)
	is.True(errors.Is(err, errors.ErrNotFound))
	_, err = a.Get("z")
	is.True(errors.Is(err, errors.ErrNotFound))

	err = a.Set("x", "seven")
	is.True(errors.Is(err, errors.ErrConversion))
}

func TestAttributeValue(t *testing.T) {
	is := is.New(t)
	c1 := flagCount(t, galactic.WithIndividual("x", galactic.Values{"flag": true}))
	c2 := flagCount(t, galactic.WithIdentifiers("x"))

	flag, _ := c1.Model().Get("flag")
	x1, _ := c1.Population().Get("x")
	x2, _ := c2.Population().Get("x")

	v, err := flag.Value(x1)
	is.NoErr(err)
	is.Equal(v, true)

	_, err = flag.Value(x2)
	is.True(errors.Is(err, errors.ErrNotFound))

	_, err = flag.Value(nil)
	is.True(errors.Is(err, errors.ErrNotFound))
}

func TestAttributeEquality(t *testing.T) {
	is := is.New(t)
	c1 := flagCount(t)
	c2 := flagCount(t)

	flag1, _ := c1.Model().Get("flag")
	count1, _ := c1.Model().Get("count")
	flag2, _ := c2.Model().Get("flag")

	is.True(flag1.Equal(flag1))
	is.True(!flag1.Equal(count1))
	is.True(!flag1.Equal(flag2))

	// retyping replaces the attribute; the identity is kept
	is.NoErr(c1.Model().Set("flag", category.Boolean))
	flag3, _ := c1.Model().Get("flag")
	is.True(flag3 != flag1)
	is.True(flag3.Equal(flag1))
	is.Equal(flag3.Key(), galactic.AttributeKey{Context: c1, Name: "flag"})

	// the replaced attribute writes through the current type
	is.NoErr(c1.Population().Set("x", nil))
	is.NoErr(flag1.Set("x", []bool{false}))
	v, _ := flag3.Get("x")
	is.True(v == category.Boolean.Of(false))
}

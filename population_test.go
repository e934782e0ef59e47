package galactic_test

import (
	"testing"

	"github.com/galactic-lattice/galactic"
	"github.com/galactic-lattice/galactic/category"
	"github.com/galactic-lattice/galactic/errors"
	"github.com/matryer/is"
)

func TestPopulationSet(t *testing.T) {
	is := is.New(t)
	c := flagCount(t)
	p := c.Population()

	is.NoErr(p.Set("x", nil))
	is.NoErr(p.Set("y", galactic.Values{"count": "12", "flag": 1}))
	is.Equal(p.Identifiers(), []string{"x", "y"})
	is.Equal(p.String(), "['x', 'y']")
	is.Equal(p.Len(), 2)

	y, err := p.Get("y")
	is.NoErr(err)
	is.Equal(y.String(), "{'flag': True, 'count': 12}")

	// updating keeps the other values and the position
	is.NoErr(p.Set("x", galactic.Values{"count": 3}))
	is.NoErr(p.Set("x", galactic.Values{"flag": true}))
	x, _ := p.Get("x")
	is.Equal(x.String(), "{'flag': True, 'count': 3}")
	is.Equal(p.Identifiers(), []string{"x", "y"})

	// the same individual is kept
	again, _ := p.Get("x")
	is.True(again == x)
	consistent(t, c)
}

func TestPopulationSetAtomic(t *testing.T) {
	cases := map[string]struct {
		values galactic.Values
		want   error
	}{
		"unknown attribute": {
			values: galactic.Values{"count": 5, "missing": 1},
			want:   errors.ErrNotFound,
		},
		"bad value": {
			values: galactic.Values{"flag": true, "count": "many"},
			want:   errors.ErrConversion,
		},
	}

	for k, tc := range cases {
		t.Run(k, func(t *testing.T) {
			is := is.New(t)
			c := flagCount(t, galactic.WithIndividual("x", galactic.Values{"count": 2}))
			p := c.Population()

			err := p.Set("x", tc.values)
			is.True(errors.Is(err, tc.want))
			x, _ := p.Get("x")
			is.Equal(x.String(), "{'flag': False, 'count': 2}")

			err = p.Set("new", tc.values)
			is.True(errors.Is(err, tc.want))
			is.True(!p.Has("new"))
			is.Equal(p.Identifiers(), []string{"x"})
		})
	}
}

func TestPopulationDelete(t *testing.T) {
	is := is.New(t)
	c := flagCount(t, galactic.WithIdentifiers("x", "y", "z"))
	p := c.Population()
	y, _ := p.Get("y")

	is.NoErr(p.Delete("y"))
	is.Equal(p.Identifiers(), []string{"x", "z"})
	is.True(!p.Has("y"))

	err := p.Delete("y")
	is.True(errors.Is(err, errors.ErrNotFound))

	_, err = p.Get("y")
	is.True(errors.Is(err, errors.ErrNotFound))

	// a removed individual can still be read but not written
	v, err := y.Get("flag")
	is.NoErr(err)
	is.Equal(v, false)
	err = y.Set("flag", true)
	is.True(errors.Is(err, errors.ErrNotFound))

	// re-adding starts from the defaults
	is.NoErr(p.Set("y", nil))
	y2, _ := p.Get("y")
	is.True(y2 != y)
	is.Equal(p.Identifiers(), []string{"x", "z", "y"})
	is.NoErr(y2.Set("flag", true))
	is.Equal(y.String(), "{'flag': False, 'count': 0}")
}

func TestPopulationAll(t *testing.T) {
	is := is.New(t)
	c := flagCount(t, galactic.WithIdentifiers("c", "a", "b"))

	var ids []string
	for id, x := range c.Population().All() {
		is.Equal(id, x.Identifier())
		ids = append(ids, id)
	}
	is.Equal(ids, []string{"c", "a", "b"})

	ids = ids[:0]
	for id := range c.Population().All() {
		if id == "a" {
			break
		}
		ids = append(ids, id)
	}
	is.Equal(ids, []string{"c"})
}

func TestPopulationCategoryValues(t *testing.T) {
	is := is.New(t)
	color := category.New("Color", []string{"R", "G", "B"}, category.Cache(true))
	c, err := galactic.New(galactic.Define("color", color), galactic.WithIndividual("x", galactic.Values{"color": []any{"B", "R"}}))
	is.NoErr(err)

	x, _ := c.Population().Get("x")
	v, err := x.Get("color")
	is.NoErr(err)
	is.True(v == color.Of("R", "B"))

	err = x.Set("color", "R")
	is.True(errors.Is(err, errors.ErrConversion))
	is.Equal(x.String(), "{'color': {'R', 'B'}}")
}

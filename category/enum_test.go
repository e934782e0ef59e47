package category_test

import (
	"fmt"
	"testing"

	"github.com/galactic-lattice/galactic/category"
	"github.com/galactic-lattice/galactic/errors"
	"github.com/matryer/is"
)

func TestNewEnum(t *testing.T) {
	is := is.New(t)

	e, err := category.NewEnum("Size", []string{"S", "M", "L", "M"})
	is.NoErr(err)
	is.Equal(len(e.Members()), 3)
	is.Equal(e.Zero().(*category.Member[string]).Item(), "S")

	_, err = category.NewEnum("Nothing", []string{})
	is.True(errors.Is(err, errors.ErrValue))
}

func TestEnumConvert(t *testing.T) {
	size, err := category.NewEnum("Size", []string{"S", "M", "L"})
	if err != nil {
		t.Fatal(err)
	}
	other, err := category.NewEnum("Other", []string{"L", "XL"})
	if err != nil {
		t.Fatal(err)
	}
	m, _ := size.Member("M")
	l, _ := other.Member("L")
	xl, _ := other.Member("XL")

	cases := map[string]struct {
		in      any
		want    string
		wantErr bool
	}{
		"item":            {in: "L", want: "L"},
		"member":          {in: m, want: "M"},
		"foreign member":  {in: l, want: "L"},
		"unknown item":    {in: "XS", wantErr: true},
		"unknown foreign": {in: xl, wantErr: true},
		"wrong go type":   {in: 3, wantErr: true},
		"nil":             {in: nil, wantErr: true},
		"nil member":      {in: (*category.Member[string])(nil), wantErr: true},
	}

	for k, tc := range cases {
		t.Run(k, func(t *testing.T) {
			is := is.New(t)
			v, err := size.Convert(tc.in)
			if tc.wantErr {
				is.True(errors.Is(err, errors.ErrConversion))
				return
			}
			is.NoErr(err)
			is.True(size.Accepts(v))
			is.Equal(v.(*category.Member[string]).Item(), tc.want)
		})
	}
}

func TestEnumMembersShared(t *testing.T) {
	is := is.New(t)
	size, _ := category.NewEnum("Size", []string{"S", "M"})

	a, err := size.Convert("M")
	is.NoErr(err)
	b, err := size.Member("M")
	is.NoErr(err)
	is.True(a == b)
	is.Equal(b.Index(), 1)
	is.True(b.Enum() == size)
	is.Equal(b.String(), "M")
	is.Equal(b.Repr(), "'M'")
	is.Equal(fmt.Sprint(b), "M")
	is.Equal(fmt.Sprintf("%#v", b), "Size('M')")

	n, _ := category.NewEnum("Level", []int{1, 2})
	two, err := n.Member(2)
	is.NoErr(err)
	is.Equal(two.String(), "2")
	is.Equal(two.Repr(), "2")
}

package galactic_test

import (
	"strings"
	"testing"

	"github.com/galactic-lattice/galactic"
	"github.com/galactic-lattice/galactic/interval"
	"github.com/matryer/is"
)

func TestTable(t *testing.T) {
	is := is.New(t)
	c, err := galactic.New(
		galactic.Define("flag", galactic.Bool{}, "size", interval.Integer),
		galactic.WithIndividual("x", galactic.Values{"flag": true, "size": 3}),
		galactic.WithIdentifiers("y"),
	)
	is.NoErr(err)

	out := c.Table()
	is.True(strings.Contains(out, "individual"))
	is.True(strings.Contains(out, "flag"))
	is.True(strings.Contains(out, "ImpreciseInteger"))
	is.True(strings.Contains(out, "[3:3]"))
	is.True(strings.Contains(out, "True"))
	is.True(strings.Contains(out, "2 individuals, 2 attributes"))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	is.True(strings.HasPrefix(lines[0], "┌"))

	one, err := galactic.New(galactic.Define("flag", galactic.Bool{}), galactic.WithIdentifiers("x"))
	is.NoErr(err)
	is.True(strings.Contains(one.Table(), "1 individual, 1 attribute"))
}

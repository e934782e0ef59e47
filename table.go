package galactic

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/galactic-lattice/galactic/internal/repr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table renders the context as a table with one row per individual and one
// column per attribute. Column headers show the attribute name over its
// type.
func (c *Context) Table() string {
	tw := table.NewWriter()

	header := table.Row{"\nindividual"}
	for name, a := range c.model.All() {
		header = append(header, fmt.Sprintf("%s\n%s", name, a.typ))
	}
	tw.AppendHeader(header)

	for id, x := range c.population.All() {
		tw.AppendRow(individualRow(id, x))
	}

	tw.SetCaption("%s, %s", count(c.population.Len(), "individual"), count(c.model.Len(), "attribute"))

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

func individualRow(id string, x *Individual) table.Row {
	row := table.Row{id}
	for _, v := range x.All() {
		row = append(row, repr.Of(v))
	}
	return row
}

func count(n int, singular string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, singular, "")
}

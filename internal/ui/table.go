package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table writes rows as aligned columns. The header row is styled when
// stdout is a terminal.
type Table struct {
	w      *tabwriter.Writer
	styled bool
}

// NewTable creates a table writing to out with the given header columns.
func NewTable(out io.Writer, columns ...string) *Table {
	t := &Table{
		w:      tabwriter.NewWriter(out, 0, 8, 2, ' ', 0),
		styled: true,
	}
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = Header(c)
	}
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
	return t
}

// Row appends one data row.
func (t *Table) Row(cells ...string) {
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

// Flush renders the table.
func (t *Table) Flush() error {
	return t.w.Flush()
}

// Package tabular renders fixed-width text tables.
package tabular

import (
	"strings"
	"unicode/utf8"
)

const sep = "  "

// Table is a header plus rows of cells. Column widths are the widest cell of
// each column over the rows only; the header is padded to the same widths.
type Table struct {
	header []string
	rows   [][]string
}

func New(header ...string) *Table {
	return &Table{header: header}
}

// Append adds a row. Missing cells render empty, extra cells are dropped.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Widths() []int {
	w := make([]int, len(t.header))
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c); n > w[i] {
				w[i] = n
			}
		}
	}
	return w
}

// String renders the header and every row, one per line, each cell
// left-justified and columns separated by two spaces.
func (t *Table) String() string {
	w := t.Widths()
	var b strings.Builder
	line := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(c)
			if pad := w[i] - utf8.RuneCountInString(c); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	line(t.header)
	for _, row := range t.rows {
		b.WriteByte('\n')
		line(row)
	}
	return b.String()
}

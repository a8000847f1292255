package table

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	edge     = "|" // Wraps every line and separates cells
	junction = "+" // Separates dash runs in border lines
)

// String renders the table as text.
// The header is surrounded by two border lines, and a last border line follows the data rows.
// The text does not end with a newline.
func (t *Table) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

// WriteTo writes the text rendering of the table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

func (t *Table) write(sb *strings.Builder) {
	border := t.border()
	for i, row := range t.Rows {
		if i == 0 {
			sb.WriteString(border)
			sb.WriteByte('\n')
		}
		sb.WriteString(t.row(row))
		sb.WriteByte('\n')
		if i == 0 {
			sb.WriteString(border)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(border)
}

func (t *Table) border() string {
	runs := make([]string, len(t.Widths))
	for i, w := range t.Widths {
		runs[i] = strings.Repeat("-", w+2)
	}
	return edge + strings.Join(runs, junction) + edge
}

func (t *Table) row(row []string) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = " " + pad(cell, t.Widths[i]) + " "
	}
	return edge + strings.Join(cells, edge) + edge
}

// Markdown renders the table as a GitHub flavored Markdown table.
func (t *Table) Markdown() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		sb.WriteString(t.row(row))
		sb.WriteByte('\n')
		if i == 0 {
			runs := make([]string, len(t.Widths))
			for j, w := range t.Widths {
				runs[j] = strings.Repeat("-", max(w+2, 3))
			}
			sb.WriteString(edge + strings.Join(runs, edge) + edge)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// pad right-pads s with spaces up to width display cells.
func pad(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

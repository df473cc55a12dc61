package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows as aligned columns. The first column is left-aligned,
// all others right-aligned.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends one row. Missing cells render empty; extra cells are kept
// and widen the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// String renders the table. An empty table renders as "".
func (t *Table) String() string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	widths := t.columnWidths()

	var sb strings.Builder

	if len(t.Headers) > 0 {
		sb.WriteString(t.renderRow(t.Headers, widths, HeaderStyle))
		sb.WriteByte('\n')
	}

	for _, row := range t.Rows {
		sb.WriteString(t.renderRow(row, widths, lipgloss.NewStyle()))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (t *Table) columnWidths() []int {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}

	widths := make([]int, cols)
	measure := func(cells []string) {
		for i, c := range cells {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	measure(t.Headers)

	for _, row := range t.Rows {
		measure(row)
	}

	return widths
}

func (t *Table) renderRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(widths))

	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}

		pad := strings.Repeat(" ", w-lipgloss.Width(cell))
		if i == 0 {
			parts[i] = style.Render(cell) + pad
		} else {
			parts[i] = pad + style.Render(cell)
		}
	}

	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows such as byte breakdowns and code listings.
// Numeric columns can be right-aligned so values line up by magnitude.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string

	align []lipgloss.Position
}

// NewSimpleTable creates a table with left-aligned columns.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	align := make([]lipgloss.Position, len(headers))
	for i := range align {
		align[i] = lipgloss.Left
	}
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
		align:   align,
	}
}

// AlignRight right-aligns the given columns, header included.
// Out-of-range indexes are ignored.
func (t *SimpleTable) AlignRight(cols ...int) *SimpleTable {
	for _, c := range cols {
		if c >= 0 && c < len(t.align) {
			t.align[c] = lipgloss.Right
		}
	}
	return t
}

// AddRow adds a row. Cells beyond the header count are dropped on render.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// widths returns each column's width including one cell of padding per side.
func (t *SimpleTable) widths() []int {
	w := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		w[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(w); i++ {
			if cw := lipgloss.Width(row[i]); cw > w[i] {
				w[i] = cw
			}
		}
	}
	for i := range w {
		w[i] += 2
	}
	return w
}

// View renders the table. An empty table renders as "".
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := t.widths()
	sep := styles.Muted.Render("|")

	line := func(cells []string, base lipgloss.Style) string {
		parts := make([]string, 0, len(widths))
		for i := 0; i < len(cells) && i < len(widths); i++ {
			parts = append(parts, base.Width(widths[i]).Align(t.align[i]).Render(cells[i]))
		}
		return strings.Join(parts, sep)
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title) + "\n")
	}
	sb.WriteString(line(t.Headers, styles.Bold.Padding(0, 1)) + "\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)) + "\n")

	for _, row := range t.Rows {
		sb.WriteString(line(row, styles.Body.Padding(0, 1)) + "\n")
	}
	return sb.String()
}

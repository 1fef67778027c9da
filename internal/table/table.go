// Package table renders summary rows as a markdown table or a styled
// terminal table.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// Tone colours a row in pretty output. Markdown output ignores it.
type Tone int

const (
	ToneNone Tone = iota
	ToneGood
	ToneWarn
	ToneBad
)

type row struct {
	cells []string
	tone  Tone
}

type Table struct {
	headers []string
	rows    []row
}

func New(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Missing cells are left blank and extra cells are
// dropped so every row has exactly one cell per header.
func (t *Table) AddRow(tone Tone, cells ...string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, cells)
	t.rows = append(t.rows, row{cells: fitted, tone: tone})
}

func (t *Table) Len() int {
	return len(t.rows)
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// Markdown renders a GitHub-flavoured markdown table with columns padded to
// the widest cell.
func (t *Table) Markdown() string {
	header := escapeAll(t.headers)
	body := make([][]string, len(t.rows))
	for i, r := range t.rows {
		body[i] = escapeAll(r.cells)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(3, runewidth.StringWidth(h))
	}
	for _, cells := range body {
		for i, c := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var b strings.Builder
	writeLine(&b, header, widths)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(&b, sep, widths)

	for _, cells := range body {
		writeLine(&b, cells, widths)
	}

	return b.String()
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, c := range cells {
		b.WriteString(" ")
		b.WriteString(runewidth.FillRight(c, widths[i]))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func escapeAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellEscaper.Replace(c)
	}
	return out
}

// Pretty renders the table with lipgloss borders, colouring the first column
// of each row by its tone.
func (t *Table) Pretty() string {
	lt := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.headers...).
		StyleFunc(func(r, c int) lipgloss.Style {
			if r == ltable.HeaderRow {
				return headerStyle
			}
			if c == 0 && r >= 0 && r < len(t.rows) {
				return cellStyle.Foreground(toneColor(t.rows[r].tone))
			}
			return cellStyle
		})

	for _, r := range t.rows {
		lt.Row(r.cells...)
	}

	return lt.Render()
}

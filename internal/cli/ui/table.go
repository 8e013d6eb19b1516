// Package ui provides the text rendering primitives used by the CLI:
// aligned tables, key-value header blocks, and error formatting.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Placeholder is rendered dimmed in table cells to stand in for absent
// values.
const Placeholder = "-"

// rowKind distinguishes ordinary data rows from structural rows.
type rowKind int

const (
	rowData rowKind = iota
	rowBlank
	rowSection
)

type tableRow struct {
	kind  rowKind
	cells []string
}

// Table renders tabular data with aligned columns. Beyond plain rows it
// supports blank separator rows and mid-table section headers whose last
// cell spans the remaining columns.
type Table struct {
	writer  io.Writer
	headers []string
	rows    []tableRow
	noColor bool
}

// TableOptions configures table behavior.
type TableOptions struct {
	NoColor bool
}

// NewTable creates a new table with the given headers.
func NewTable(w io.Writer, headers []string, opts *TableOptions) *Table {
	noColor := false
	if opts != nil {
		noColor = opts.NoColor
	}
	return &Table{
		writer:  w,
		headers: headers,
		noColor: noColor,
	}
}

// AddRow adds a data row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, tableRow{kind: rowData, cells: cells})
}

// AddBlankRow adds an empty separator row.
func (t *Table) AddBlankRow() {
	t.rows = append(t.rows, tableRow{kind: rowBlank})
}

// AddSection adds a sub-header row. Its cells are styled like the table
// header and the final cell spans all remaining columns.
func (t *Table) AddSection(cells ...string) {
	t.rows = append(t.rows, tableRow{kind: rowSection, cells: cells})
}

// Render renders the table to the writer.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range t.rows {
		if row.kind == rowBlank {
			continue
		}
		for i, cell := range row.cells {
			// A section's spanning last cell does not widen its column.
			if row.kind == rowSection && i == len(row.cells)-1 {
				continue
			}
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	gray := color.New(color.FgHiBlack)
	faint := color.New(color.Faint)
	if t.noColor {
		bold.DisableColor()
		gray.DisableColor()
		faint.DisableColor()
	}

	t.renderStyled(bold, t.headers, widths)

	for i, width := range widths {
		gray.Fprint(t.writer, strings.Repeat("─", width))
		if i < len(widths)-1 {
			gray.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		switch row.kind {
		case rowBlank:
			fmt.Fprintln(t.writer)
		case rowSection:
			t.renderStyled(bold, row.cells, widths)
		default:
			for i, cell := range row.cells {
				if i >= len(widths) {
					break
				}
				if cell == Placeholder {
					faint.Fprint(t.writer, cell)
					fmt.Fprint(t.writer, strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
				} else {
					fmt.Fprint(t.writer, padRight(cell, widths[i]))
				}
				if i < len(row.cells)-1 {
					fmt.Fprint(t.writer, "  ")
				}
			}
			fmt.Fprintln(t.writer)
		}
	}
}

// renderStyled prints one header-styled row; the last cell is not padded
// so it may span the remaining width.
func (t *Table) renderStyled(style *color.Color, cells []string, widths []int) {
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i == len(cells)-1 {
			style.Fprint(t.writer, cell)
		} else {
			style.Fprint(t.writer, padRight(cell, widths[i]))
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)
}

// padRight pads a string with spaces on the right to reach the target
// display width.
func padRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// KeyValueTable renders a simple two-column key-value block.
type KeyValueTable struct {
	writer  io.Writer
	rows    []kvRow
	noColor bool
}

type kvRow struct {
	key   string
	value string
}

// NewKeyValueTable creates a new key-value table.
func NewKeyValueTable(w io.Writer, noColor bool) *KeyValueTable {
	return &KeyValueTable{writer: w, noColor: noColor}
}

// AddRow adds a key-value pair to the table.
func (t *KeyValueTable) AddRow(key, value string) {
	t.rows = append(t.rows, kvRow{key: key, value: value})
}

// Render renders the key-value table.
func (t *KeyValueTable) Render() {
	if len(t.rows) == 0 {
		return
	}

	maxKeyWidth := 0
	for _, row := range t.rows {
		if w := runewidth.StringWidth(row.key); w > maxKeyWidth {
			maxKeyWidth = w
		}
	}

	cyan := color.New(color.FgCyan)
	if t.noColor {
		cyan.DisableColor()
	}
	for _, row := range t.rows {
		cyan.Fprint(t.writer, padRight(row.key+":", maxKeyWidth+1))
		fmt.Fprintf(t.writer, " %s\n", row.value)
	}
}

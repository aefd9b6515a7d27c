// Package tables defines the raw tabular input consumed by the reconciliation
// engine. A Table is produced by a collaborator (CSV loader, test fixture) and
// carries a header row plus string cells; it knows nothing about how it was
// parsed or how results will be rendered.
package tables

import "strings"

// Table is one parsed source file: an ordered header row and an ordered
// sequence of rows of raw string cells. Rows may be shorter than the header
// row; missing trailing cells read as empty strings.
type Table struct {
	// File identifies the source file this table was parsed from.
	File string

	// Headers is the raw header row, in column order.
	Headers []string

	// Rows holds the data rows. Row lengths may differ from len(Headers).
	Rows [][]string
}

// Cell returns the trimmed cell at (row, col), or "" when the row is short or
// the indexes are out of range. It never panics.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// RowBlank reports whether every cell in the row is empty after trimming.
// Out-of-range rows are blank.
func (t *Table) RowBlank(row int) bool {
	if row < 0 || row >= len(t.Rows) {
		return true
	}
	for _, cell := range t.Rows[row] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// NonBlankRows counts rows with at least one non-empty cell. Fully blank rows
// are excluded from completeness denominators.
func (t *Table) NonBlankRows() int {
	n := 0
	for i := range t.Rows {
		if !t.RowBlank(i) {
			n++
		}
	}
	return n
}

// Column returns the trimmed values of one column, one entry per row.
// Short rows contribute empty strings.
func (t *Table) Column(col int) []string {
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Cell(i, col)
	}
	return values
}

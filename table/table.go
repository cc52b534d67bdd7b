// Package table models the tabular surfaces of the engine: raw string tables
// as supplied by the host (account types, accounts, currencies, ledgers) and
// the typed output matrix a rendered statement produces.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a raw row-major table of string cells. Rows may be ragged;
// consumers go through Cell and treat missing cells as blank.
type Table [][]string

// ReadCSV reads a raw table from CSV input. Records are allowed to have
// varying field counts, matching spreadsheet exports.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table CSV: %w", err)
	}
	return Table(records), nil
}

// Cell returns the cell at (row, col), or "" when the row is short.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t) {
		return ""
	}
	r := t[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// IsBlank reports whether a cell is empty or whitespace only.
func IsBlank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

package table

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates output cell types.
type ValueKind int

const (
	Text ValueKind = iota
	Date
	Number
)

// Value is one typed cell of an output matrix: a text label, a date, or a
// numeric total.
type Value struct {
	Kind   ValueKind
	Text   string
	Date   time.Time
	Number decimal.Decimal
}

// TextValue creates a text cell.
func TextValue(s string) Value {
	return Value{Kind: Text, Text: s}
}

// DateValue creates a date cell.
func DateValue(t time.Time) Value {
	return Value{Kind: Date, Date: t}
}

// NumberValue creates a numeric cell.
func NumberValue(d decimal.Decimal) Value {
	return Value{Kind: Number, Number: d}
}

// String renders the cell for display: dates in the canonical layout, numbers
// in plain decimal form.
func (v Value) String() string {
	switch v.Kind {
	case Date:
		return v.Date.Format("2006-01-02")
	case Number:
		return v.Number.String()
	default:
		return v.Text
	}
}

// MarshalJSON renders dates in the canonical layout and numbers in plain
// decimal form, both as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Date:
		return json.Marshal(v.Date.Format("2006-01-02"))
	case Number:
		return json.Marshal(v.Number)
	default:
		return json.Marshal(v.Text)
	}
}

// Matrix is a row-major table of typed cells, the output form of a rendered
// statement.
type Matrix [][]Value

// WriteCSV writes the matrix as CSV using each cell's display form.
func (m Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for _, row := range m {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = cell.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}

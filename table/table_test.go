package table_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/ledgersheet-dev/ledgersheet/table"
)

func TestReadCSV_AllowsRaggedRows(t *testing.T) {
	tbl, err := table.ReadCSV(strings.NewReader("a,b,c\nd\ne,f\n"))
	assert.NoError(t, err)
	assert.Equal(t, table.Table{{"a", "b", "c"}, {"d"}, {"e", "f"}}, tbl)
}

func TestCell_ShortRowsReadBlank(t *testing.T) {
	tbl := table.Table{{"a"}, {"b", "c"}}

	assert.Equal(t, "a", tbl.Cell(0, 0))
	assert.Equal(t, "", tbl.Cell(0, 1))
	assert.Equal(t, "c", tbl.Cell(1, 1))
	assert.Equal(t, "", tbl.Cell(5, 0))
	assert.Equal(t, "", tbl.Cell(-1, 0))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, table.IsBlank(""))
	assert.True(t, table.IsBlank("   "))
	assert.False(t, table.IsBlank(" x "))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "hello", table.TextValue("hello").String())
	assert.Equal(t, "2024-01-01", table.DateValue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "12.5", table.NumberValue(decimal.RequireFromString("12.5")).String())
}

func TestValueMarshalJSON(t *testing.T) {
	text, err := table.TextValue("hello").MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"hello"`, string(text))

	d, err := table.DateValue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(d))

	n, err := table.NumberValue(decimal.RequireFromString("12.5")).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(n))
}

func TestMatrixWriteCSV(t *testing.T) {
	m := table.Matrix{
		{table.TextValue(""), table.TextValue("USD")},
		{table.TextValue("sales"), table.NumberValue(decimal.NewFromInt(100))},
	}

	var buf bytes.Buffer
	assert.NoError(t, m.WriteCSV(&buf))
	assert.Equal(t, ",USD\nsales,100\n", buf.String())
}

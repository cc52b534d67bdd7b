package report

import (
	"github.com/ledgersheet-dev/ledgersheet/chart"
	"github.com/ledgersheet-dev/ledgersheet/table"
)

// IndentToken is the separator repeated once per nesting depth in row labels,
// giving visual hierarchy in a flat table.
const IndentToken = "  "

// totalPrefix marks roll-up rows emitted when leaving an internal node.
const totalPrefix = "TOTAL: "

// Render walks the statement's roots in document order and emits the output
// matrix: two header rows, then per account an entry row of direct totals and,
// for internal nodes, an exit roll-up row of direct + subaccount totals.
//
// Column order is period-major, currency-minor, identical across header and
// data rows. When balanceSheetEntry is set, the balance-sheet entry rule
// applies: an internal node whose children include a balance-sheet-classified
// child shows only its direct total on entry (its roll-up arrives with the
// exit row), while other nodes show direct + roll-up on entry.
func Render(roots []*chart.Account, t *Totals, balanceSheetEntry bool) table.Matrix {
	m := table.Matrix{currencyHeader(t), periodHeader(t)}

	for _, root := range roots {
		chart.Walk(root, "",
			func(indent string, a *chart.Account) string {
				m = append(m, entryRow(indent, a, t, balanceSheetEntry))
				return indent + IndentToken
			},
			func(indent string, a *chart.Account) string {
				indent = indent[:len(indent)-len(IndentToken)]
				if len(a.Children) > 0 {
					m = append(m, rollupRow(indent, a, t))
				}
				return indent
			},
		)
	}
	return m
}

// currencyHeader lists the currency codes, repeating per period.
func currencyHeader(t *Totals) []table.Value {
	row := []table.Value{table.TextValue("")}
	for range t.Periods {
		for _, currency := range t.Currencies {
			row = append(row, table.TextValue(currency))
		}
	}
	return row
}

// periodHeader lists each period's start instant, repeating per currency
// within the period.
func periodHeader(t *Totals) []table.Value {
	row := []table.Value{table.TextValue("")}
	for _, period := range t.Periods {
		for range t.Currencies {
			row = append(row, table.DateValue(period.Begin))
		}
	}
	return row
}

func entryRow(indent string, a *chart.Account, t *Totals, balanceSheetEntry bool) []table.Value {
	// The combined face on entry applies only on balance sheets, and only to
	// nodes without a balance-sheet child; such a node gets no separate
	// roll-up contribution from balance-sheet descendants, so showing the
	// combined value does not double-count with the exit row.
	combined := balanceSheetEntry && !a.HasChildWithStatement(chart.BalanceSheet)

	row := []table.Value{table.TextValue(indent + a.Name)}
	for _, period := range t.Periods {
		for _, currency := range t.Currencies {
			cell := t.Cell(a, period, currency)
			if combined {
				row = append(row, table.NumberValue(cell.Combined()))
			} else {
				row = append(row, table.NumberValue(cell.Direct))
			}
		}
	}
	return row
}

func rollupRow(indent string, a *chart.Account, t *Totals) []table.Value {
	row := []table.Value{table.TextValue(indent + totalPrefix + a.Name)}
	for _, period := range t.Periods {
		for _, currency := range t.Currencies {
			row = append(row, table.NumberValue(t.Cell(a, period, currency).Combined()))
		}
	}
	return row
}

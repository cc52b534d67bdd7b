package report

import (
	"github.com/ledgersheet-dev/ledgersheet/chart"
)

// NetRevenueName is the display name of the synthetic equity account injected
// into balance sheets.
const NetRevenueName = "Net Revenue"

// InjectNetRevenue manufactures a synthetic account under the equity root
// whose totals derive, per (period, currency), from the income-statement
// roots: revenue + exchange - expenses. Each side sums both the direct and
// roll-up totals of the respective root. The synthetic account is appended to
// the equity root's children and its cells are stored in totals so formatting
// treats it like any other account.
//
// The source totals must have been aggregated over the revenue, exchange, and
// expenses roots with the same periods, currencies, and date filter as totals.
func InjectNetRevenue(totals, source *Totals, equity, revenue, exchange, expenses *chart.Account) *chart.Account {
	synthetic := &chart.Account{Name: NetRevenueName, Info: equity.Info}
	equity.Children = append(equity.Children, synthetic)

	for _, period := range totals.Periods {
		for _, currency := range totals.Currencies {
			rev := source.Cell(revenue, period, currency).Combined()
			exch := source.Cell(exchange, period, currency).Combined()
			exp := source.Cell(expenses, period, currency).Combined()

			totals.set(synthetic, period, currency, Cell{
				Direct: rev.Add(exch).Sub(exp),
			})
		}
	}
	return synthetic
}

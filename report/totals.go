// Package report computes period-bucketed statement totals from a chart of
// accounts and normalized postings, and renders them as output tables.
//
// Aggregation keeps two independent running sums per (account, period,
// currency): the direct total of postings on the account itself, and the
// roll-up total of postings on any strict subaccount. They are never
// pre-summed; formatters choose which face a row shows.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgersheet-dev/ledgersheet/chart"
	"github.com/ledgersheet-dev/ledgersheet/date"
	"github.com/ledgersheet-dev/ledgersheet/ledger"
)

// Cell holds the two totals of one (account, period, currency) triple.
type Cell struct {
	// Direct sums postings made directly on the account.
	Direct decimal.Decimal
	// Rollup sums postings made on any strict subaccount.
	Rollup decimal.Decimal
}

// Combined returns Direct + Rollup, the roll-up display face.
func (c Cell) Combined() decimal.Decimal {
	return c.Direct.Add(c.Rollup)
}

type cellKey struct {
	account  *chart.Account
	begin    time.Time
	currency string
}

// Totals indexes aggregated cells by account identity, period, and currency.
// Missing cells read as zero, not absent.
type Totals struct {
	Periods    []date.Period
	Currencies []string

	cells map[cellKey]Cell
}

// Cell returns the totals for an (account, period, currency) triple. A triple
// with no matching postings yields a zero-valued cell.
func (t *Totals) Cell(a *chart.Account, p date.Period, currency string) Cell {
	return t.cells[cellKey{account: a, begin: p.Begin, currency: currency}]
}

func (t *Totals) set(a *chart.Account, p date.Period, currency string, c Cell) {
	t.cells[cellKey{account: a, begin: p.Begin, currency: currency}] = c
}

// DateFilter selects which postings fall into a period.
type DateFilter int

const (
	// Flow buckets by posting date with a half-open interval, the flow
	// semantics of income statements.
	Flow DateFilter = iota
	// AsOf admits every posting dated strictly before the period's end, the
	// point-in-time semantics of balance sheets.
	AsOf
	// ByTerm buckets by the promised-payment term when present, falling back
	// to the posting date, with flow comparison. Used by budget views.
	ByTerm
)

func (f DateFilter) matches(p ledger.Posting, period date.Period) bool {
	switch f {
	case AsOf:
		return period.ContainsUpTo(p.Date)
	case ByTerm:
		return period.Contains(p.EffectiveDate())
	default:
		return period.Contains(p.Date)
	}
}

// signed applies the observing account's balance normality to a posting: for
// a normal-credit account a credit leg adds and a debit leg subtracts, and
// vice versa for normal-debit accounts.
func signed(p ledger.Posting, kind chart.Kind) decimal.Decimal {
	add := (p.Side == ledger.Credit) == (kind == chart.NormalCredit)
	if add {
		return p.Value
	}
	return p.Value.Neg()
}

// Aggregate computes totals for every account reachable from the given roots,
// across all (period, currency) pairs. Direct totals match postings by account
// identity; roll-up totals match postings on strict subaccounts, signed by the
// observing account's normality (not the posted account's).
func Aggregate(roots []*chart.Account, postings []ledger.Posting, periods []date.Period, currencies []string, filter DateFilter) *Totals {
	t := &Totals{
		Periods:    periods,
		Currencies: currencies,
		cells:      make(map[cellKey]Cell),
	}

	for _, root := range roots {
		for _, account := range chart.Flatten(root) {
			for _, period := range periods {
				for _, currency := range currencies {
					var cell Cell
					for _, p := range postings {
						if p.Currency != currency || !filter.matches(p, period) {
							continue
						}
						if p.Account == account {
							cell.Direct = cell.Direct.Add(signed(p, account.Info.Kind))
						} else if account.IsSubaccount(p.Account) {
							cell.Rollup = cell.Rollup.Add(signed(p, account.Info.Kind))
						}
					}
					t.set(account, period, currency, cell)
				}
			}
		}
	}
	return t
}

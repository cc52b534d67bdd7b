package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/ledgersheet-dev/ledgersheet/chart"
	"github.com/ledgersheet-dev/ledgersheet/date"
	"github.com/ledgersheet-dev/ledgersheet/table"
)

// Ledger table types, declared in the first header row of each ledger table.
const (
	TypeGeneral   = "General Ledger"
	TypeLiability = "Liability Ledger"
	TypeExchange  = "Exchange Ledger"
)

// Header layout: row 0 carries the ledger type and currency, row 1 is a
// human-readable sub-header and is skipped.
const (
	headerRows     = 2
	headerColType  = 1
	headerColCurr  = 3
	colDate        = 0
	colDescription = 1
	colDebit       = 2
	colCredit      = 3
	colValue       = 4
	colTerm        = 5
	colExchange    = 4
	colExDebitCur  = 5
	colExDebitVal  = 6
	colExCreditCur = 7
	colExCreditVal = 8
)

// ParseAccountTypes builds the tree roots from the account-types table. Each
// row is (rootName, kind, statement): kind "Credit" marks a normal-credit
// account, statement "Yes" marks income-statement membership. Rows with a
// blank first cell are ignored.
func ParseAccountTypes(tbl table.Table) *chart.Tree {
	tree := chart.NewTree()
	for _, row := range tbl {
		if len(row) == 0 || table.IsBlank(row[0]) {
			continue
		}

		info := chart.Info{Kind: chart.NormalDebit, Statement: chart.BalanceSheet}
		if len(row) > 1 && row[1] == "Credit" {
			info.Kind = chart.NormalCredit
		}
		if len(row) > 2 && row[2] == "Yes" {
			info.Statement = chart.IncomeStatement
		}
		tree.AddRoot(chart.NewRoot(row[0], info))
	}
	return tree
}

// ParseAccounts inserts the account table's path rows into the tree. Blank
// cells within a row are dropped before resolution; rows with a blank first
// cell are ignored entirely.
func ParseAccounts(tbl table.Table, tree *chart.Tree) {
	for _, row := range tbl {
		if len(row) == 0 || table.IsBlank(row[0]) {
			continue
		}
		tree.InsertPath(row)
	}
}

// ParseCurrencies returns the currency codes from the currencies table, in
// row order. Row order defines output column order; repeated codes collapse
// to their first occurrence.
func ParseCurrencies(tbl table.Table) []string {
	var currencies []string
	for _, row := range tbl {
		if len(row) == 0 || table.IsBlank(row[0]) {
			continue
		}
		code := strings.TrimSpace(row[0])
		if slices.Contains(currencies, code) {
			continue
		}
		currencies = append(currencies, code)
	}
	return currencies
}

// ParseLedger parses one ledger table against the tree. Rows whose account
// names do not resolve, or whose date or value cells do not parse, are
// silently dropped; the dropped count is returned alongside the entries.
// An unknown ledger type in the header is a configuration error.
func ParseLedger(tbl table.Table, tree *chart.Tree) ([]*RawEntry, int, error) {
	if len(tbl) < headerRows {
		return nil, 0, fmt.Errorf("ledger table needs a %d-row header, got %d rows", headerRows, len(tbl))
	}

	ledgerType := tbl.Cell(0, headerColType)
	currency := strings.TrimSpace(tbl.Cell(0, headerColCurr))

	var (
		entries []*RawEntry
		dropped int
	)
	for _, row := range tbl[headerRows:] {
		var entry *RawEntry
		switch ledgerType {
		case TypeGeneral:
			entry = parseGeneralRow(row, tree, currency)
		case TypeLiability:
			entry = parseLiabilityRow(row, tree, currency)
		case TypeExchange:
			entry = parseExchangeRow(row, tree)
		default:
			return nil, 0, fmt.Errorf("unknown ledger type %q", ledgerType)
		}

		if entry == nil {
			dropped++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, dropped, nil
}

func parseGeneralRow(row []string, tree *chart.Tree, currency string) *RawEntry {
	if len(row) <= colValue {
		return nil
	}

	when, err := date.Parse(row[colDate])
	if err != nil {
		return nil
	}
	debit := tree.Find(row[colDebit])
	credit := tree.Find(row[colCredit])
	if debit == nil || credit == nil {
		return nil
	}
	value, err := decimal.NewFromString(row[colValue])
	if err != nil {
		return nil
	}

	return &RawEntry{
		Kind:        Default,
		Date:        when,
		Description: row[colDescription],
		Debit:       debit,
		Credit:      credit,
		Currency:    currency,
		Value:       value,
	}
}

func parseLiabilityRow(row []string, tree *chart.Tree, currency string) *RawEntry {
	if len(row) <= colTerm {
		return nil
	}

	entry := parseGeneralRow(row, tree, currency)
	if entry == nil {
		return nil
	}
	term, err := date.Parse(row[colTerm])
	if err != nil {
		return nil
	}

	entry.Kind = Liability
	entry.PaymentTerm = term
	return entry
}

func parseExchangeRow(row []string, tree *chart.Tree) *RawEntry {
	if len(row) <= colExCreditVal {
		return nil
	}

	when, err := date.Parse(row[colDate])
	if err != nil {
		return nil
	}
	debit := tree.Find(row[colDebit])
	credit := tree.Find(row[colCredit])
	exchange := tree.Find(row[colExchange])
	if debit == nil || credit == nil || exchange == nil {
		return nil
	}
	debitValue, err := decimal.NewFromString(row[colExDebitVal])
	if err != nil {
		return nil
	}
	creditValue, err := decimal.NewFromString(row[colExCreditVal])
	if err != nil {
		return nil
	}

	return &RawEntry{
		Kind:            Exchange,
		Date:            when,
		Description:     row[colDescription],
		Debit:           debit,
		Credit:          credit,
		ExchangeAccount: exchange,
		DebitCurrency:   strings.TrimSpace(row[colExDebitCur]),
		DebitValue:      debitValue,
		CreditCurrency:  strings.TrimSpace(row[colExCreditCur]),
		CreditValue:     creditValue,
	}
}

package ledger_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/ledgersheet-dev/ledgersheet/chart"
	"github.com/ledgersheet-dev/ledgersheet/ledger"
	"github.com/ledgersheet-dev/ledgersheet/table"
)

func testTree() *chart.Tree {
	tree := ledger.ParseAccountTypes(table.Table{
		{"assets", "Debit", "No"},
		{"liabilities", "Credit", "No"},
		{"equity", "Credit", "No"},
		{"revenue", "Credit", "Yes"},
		{"expenses", "Debit", "Yes"},
		{"exchange", "Credit", "Yes"},
	})
	ledger.ParseAccounts(table.Table{
		{"assets", "checking"},
		{"revenue", "sales"},
		{"expenses", "rent"},
		{"liabilities", "vendor"},
		{"exchange", "fx"},
	}, tree)
	return tree
}

func TestParseAccountTypes(t *testing.T) {
	tree := ledger.ParseAccountTypes(table.Table{
		{"revenue", "Credit", "Yes"},
		{"", "Credit", "Yes"},
		{"assets", "Whatever", "Nope"},
	})

	assert.Equal(t, 2, len(tree.Roots))

	revenue := tree.Find("revenue")
	assert.Equal(t, chart.NormalCredit, revenue.Info.Kind)
	assert.Equal(t, chart.IncomeStatement, revenue.Info.Statement)

	// Anything other than the marker words falls back to debit/balance-sheet.
	assets := tree.Find("assets")
	assert.Equal(t, chart.NormalDebit, assets.Info.Kind)
	assert.Equal(t, chart.BalanceSheet, assets.Info.Statement)
}

func TestParseCurrencies(t *testing.T) {
	currencies := ledger.ParseCurrencies(table.Table{
		{"USD"},
		{""},
		{"EUR", "ignored"},
		{"USD"},
	})
	assert.Equal(t, []string{"USD", "EUR"}, currencies)
}

func TestParseLedger_General(t *testing.T) {
	tree := testTree()

	entries, dropped, err := ledger.ParseLedger(table.Table{
		{"", "General Ledger", "", "USD"},
		{"Date", "Description", "Debit", "Credit", "Value"},
		{"2024-01-15", "sale", "checking", "sales", "100"},
	}, tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 1, len(entries))

	e := entries[0]
	assert.Equal(t, ledger.Default, e.Kind)
	assert.Equal(t, "sale", e.Description)
	assert.Equal(t, "USD", e.Currency)
	assert.Equal(t, tree.Find("checking"), e.Debit)
	assert.Equal(t, tree.Find("sales"), e.Credit)
	assert.True(t, e.Value.Equal(decimal.NewFromInt(100)))
}

func TestParseLedger_DropsUnresolvableAndMalformedRows(t *testing.T) {
	tree := testTree()

	entries, dropped, err := ledger.ParseLedger(table.Table{
		{"", "General Ledger", "", "USD"},
		{"Date", "Description", "Debit", "Credit", "Value"},
		{"2024-01-15", "ok", "checking", "sales", "100"},
		{"2024-01-16", "ghost debit", "nonexistent", "sales", "50"},
		{"2024-01-17", "ghost credit", "checking", "nonexistent", "50"},
		{"not-a-date", "bad date", "checking", "sales", "50"},
		{"2024-01-18", "bad value", "checking", "sales", "abc"},
		{"2024-01-19", "short row"},
	}, tree)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, 5, dropped)
}

func TestParseLedger_Liability(t *testing.T) {
	tree := testTree()

	entries, dropped, err := ledger.ParseLedger(table.Table{
		{"", "Liability Ledger", "", "EUR"},
		{"Date", "Description", "Debit", "Credit", "Value", "Term"},
		{"2024-01-20", "invoice", "rent", "vendor", "250", "2024-03-31"},
		{"2024-01-21", "missing term", "rent", "vendor", "250"},
	}, tree)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, 1, dropped)

	e := entries[0]
	assert.Equal(t, ledger.Liability, e.Kind)
	assert.Equal(t, "EUR", e.Currency)
	assert.Equal(t, day(t, "2024-03-31"), e.PaymentTerm)
}

func TestParseLedger_Exchange(t *testing.T) {
	tree := testTree()

	entries, dropped, err := ledger.ParseLedger(table.Table{
		{"", "Exchange Ledger", "", ""},
		{"Date", "Description", "Debit", "Credit", "Exchange", "DebitCur", "DebitVal", "CreditCur", "CreditVal"},
		{"2024-02-01", "conversion", "checking", "checking", "fx", "EUR", "90", "USD", "100"},
	}, tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 1, len(entries))

	e := entries[0]
	assert.Equal(t, ledger.Exchange, e.Kind)
	assert.Equal(t, tree.Find("fx"), e.ExchangeAccount)
	assert.Equal(t, "EUR", e.DebitCurrency)
	assert.True(t, e.DebitValue.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, "USD", e.CreditCurrency)
	assert.True(t, e.CreditValue.Equal(decimal.NewFromInt(100)))
}

func TestParseLedger_UnknownType(t *testing.T) {
	tree := testTree()

	_, _, err := ledger.ParseLedger(table.Table{
		{"", "Mystery Ledger", "", "USD"},
		{"Date", "Description", "Debit", "Credit", "Value"},
	}, tree)
	assert.Error(t, err)
}

func TestParseLedger_MissingHeader(t *testing.T) {
	tree := testTree()

	_, _, err := ledger.ParseLedger(table.Table{
		{"", "General Ledger", "", "USD"},
	}, tree)
	assert.Error(t, err)
}

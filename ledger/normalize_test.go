package ledger_test

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/ledgersheet-dev/ledgersheet/chart"
	"github.com/ledgersheet-dev/ledgersheet/ledger"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return parsed
}

func TestNormalize_Default(t *testing.T) {
	checking := chart.NewRoot("checking", chart.Info{})
	sales := chart.NewRoot("sales", chart.Info{Kind: chart.NormalCredit})

	entry := &ledger.RawEntry{
		Kind:        ledger.Default,
		Date:        day(t, "2024-01-15"),
		Description: "sale",
		Debit:       checking,
		Credit:      sales,
		Currency:    "USD",
		Value:       decimal.NewFromInt(100),
	}

	postings := ledger.Normalize(entry)
	assert.Equal(t, 2, len(postings))

	// Exactly one credit and one debit leg with equal value and currency.
	credit, debit := postings[0], postings[1]
	assert.Equal(t, ledger.Credit, credit.Side)
	assert.Equal(t, sales, credit.Account)
	assert.Equal(t, ledger.Debit, debit.Side)
	assert.Equal(t, checking, debit.Account)

	for _, p := range postings {
		assert.Equal(t, "USD", p.Currency)
		assert.True(t, p.Value.Equal(decimal.NewFromInt(100)))
		assert.Zero(t, p.Term)
		assert.Equal(t, entry, p.Source)
	}
}

func TestNormalize_LiabilityCarriesTermOnBothLegs(t *testing.T) {
	vendor := chart.NewRoot("vendor", chart.Info{Kind: chart.NormalCredit})
	supplies := chart.NewRoot("supplies", chart.Info{})

	term := day(t, "2024-03-31")
	entry := &ledger.RawEntry{
		Kind:        ledger.Liability,
		Date:        day(t, "2024-01-20"),
		Debit:       supplies,
		Credit:      vendor,
		Currency:    "EUR",
		Value:       decimal.NewFromInt(250),
		PaymentTerm: term,
	}

	postings := ledger.Normalize(entry)
	assert.Equal(t, 2, len(postings))
	for _, p := range postings {
		assert.True(t, p.Term != nil, "liability legs carry the payment term")
		assert.Equal(t, term, *p.Term)
		assert.Equal(t, term, p.EffectiveDate())
		// The posting date stays the transaction date; term never replaces it.
		assert.Equal(t, day(t, "2024-01-20"), p.Date)
	}
}

func TestNormalize_ExchangeMirrorsLegsThroughClearingAccount(t *testing.T) {
	usd := chart.NewRoot("cash-usd", chart.Info{})
	eur := chart.NewRoot("cash-eur", chart.Info{})
	fx := chart.NewRoot("fx", chart.Info{})

	entry := &ledger.RawEntry{
		Kind:            ledger.Exchange,
		Date:            day(t, "2024-02-01"),
		Debit:           eur,
		Credit:          usd,
		ExchangeAccount: fx,
		DebitCurrency:   "EUR",
		DebitValue:      decimal.NewFromInt(90),
		CreditCurrency:  "USD",
		CreditValue:     decimal.NewFromInt(100),
	}

	postings := ledger.Normalize(entry)
	assert.Equal(t, 4, len(postings))

	// Credit leg in the credit currency, debit leg in the debit currency.
	assert.Equal(t, usd, postings[0].Account)
	assert.Equal(t, ledger.Credit, postings[0].Side)
	assert.Equal(t, "USD", postings[0].Currency)
	assert.True(t, postings[0].Value.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, eur, postings[1].Account)
	assert.Equal(t, ledger.Debit, postings[1].Side)
	assert.Equal(t, "EUR", postings[1].Currency)
	assert.True(t, postings[1].Value.Equal(decimal.NewFromInt(90)))

	// The clearing account mirrors both legs with opposite sides: a debit of
	// the credit-currency value and a credit of the debit-currency value.
	assert.Equal(t, fx, postings[2].Account)
	assert.Equal(t, ledger.Debit, postings[2].Side)
	assert.Equal(t, "USD", postings[2].Currency)
	assert.True(t, postings[2].Value.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, fx, postings[3].Account)
	assert.Equal(t, ledger.Credit, postings[3].Side)
	assert.Equal(t, "EUR", postings[3].Currency)
	assert.True(t, postings[3].Value.Equal(decimal.NewFromInt(90)))
}

func TestNormalize_UnknownKindYieldsNothing(t *testing.T) {
	entry := &ledger.RawEntry{Kind: ledger.Kind(99)}
	assert.Equal(t, 0, len(ledger.Normalize(entry)))
}

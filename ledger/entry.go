// Package ledger models transactions and their normalization into postings.
//
// Raw transactions come in three kinds: plain single-currency transfers,
// future-dated liabilities, and currency exchanges routed through a clearing
// account. All three normalize into a flat list of signed-by-side postings;
// the posting value itself is always non-negative, and sign conventions are
// applied at aggregation time from the posting side and the observing
// account's balance normality.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgersheet-dev/ledgersheet/chart"
)

// Kind discriminates the closed set of transaction kinds. New kinds are added
// by extending the enum and the normalizer, never by subtyping.
type Kind int

const (
	// Default is a single-currency transfer between two accounts.
	Default Kind = iota
	// Liability is a transfer carrying a promised-payment date.
	Liability
	// Exchange is a currency conversion routed through a clearing account.
	Exchange
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Default:
		return "default"
	case Liability:
		return "liability"
	case Exchange:
		return "exchange"
	default:
		return "unknown"
	}
}

// RawEntry is one transaction as parsed from a ledger table, with account
// names already resolved against the chart.
type RawEntry struct {
	Kind        Kind
	Date        time.Time
	Description string

	Debit  *chart.Account
	Credit *chart.Account

	// Currency and Value apply to Default and Liability entries.
	Currency string
	Value    decimal.Decimal

	// PaymentTerm applies to Liability entries only.
	PaymentTerm time.Time

	// Exchange entries route two same-magnitude, opposite legs in different
	// currencies through a clearing account.
	ExchangeAccount *chart.Account
	DebitCurrency   string
	DebitValue      decimal.Decimal
	CreditCurrency  string
	CreditValue     decimal.Decimal
}

// Side is the direction of a posting leg.
type Side int

const (
	Debit Side = iota
	Credit
)

// String returns the string representation of the side.
func (s Side) String() string {
	if s == Credit {
		return "credit"
	}
	return "debit"
}

// Posting is one leg of a transaction against a single account, currency, and
// date. Value is non-negative; direction lives in Side.
type Posting struct {
	Account  *chart.Account
	Date     time.Time
	Term     *time.Time
	Side     Side
	Currency string
	Value    decimal.Decimal

	// Source is a back-reference to the transaction this leg came from.
	Source *RawEntry
}

// EffectiveDate is the instant budget views bucket by: the payment term when
// present, the posting date otherwise.
func (p Posting) EffectiveDate() time.Time {
	if p.Term != nil {
		return *p.Term
	}
	return p.Date
}

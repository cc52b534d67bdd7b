package ledger

// Normalize expands a transaction into its posting legs.
//
// Default and Liability entries yield exactly one credit and one debit posting
// with equal value and currency; liability legs additionally carry the payment
// term. Exchange entries yield four postings: the credit leg, the debit leg,
// and two offsetting legs through the clearing account, one per currency, so
// the clearing account holds two opposite same-magnitude positions in the two
// currencies of the conversion.
//
// Normalization never fails; an unrecognized kind yields zero postings.
func Normalize(e *RawEntry) []Posting {
	switch e.Kind {
	case Default:
		return []Posting{
			{Account: e.Credit, Date: e.Date, Side: Credit, Currency: e.Currency, Value: e.Value, Source: e},
			{Account: e.Debit, Date: e.Date, Side: Debit, Currency: e.Currency, Value: e.Value, Source: e},
		}

	case Liability:
		term := e.PaymentTerm
		return []Posting{
			{Account: e.Credit, Date: e.Date, Term: &term, Side: Credit, Currency: e.Currency, Value: e.Value, Source: e},
			{Account: e.Debit, Date: e.Date, Term: &term, Side: Debit, Currency: e.Currency, Value: e.Value, Source: e},
		}

	case Exchange:
		return []Posting{
			{Account: e.Credit, Date: e.Date, Side: Credit, Currency: e.CreditCurrency, Value: e.CreditValue, Source: e},
			{Account: e.Debit, Date: e.Date, Side: Debit, Currency: e.DebitCurrency, Value: e.DebitValue, Source: e},
			{Account: e.ExchangeAccount, Date: e.Date, Side: Debit, Currency: e.CreditCurrency, Value: e.CreditValue, Source: e},
			{Account: e.ExchangeAccount, Date: e.Date, Side: Credit, Currency: e.DebitCurrency, Value: e.DebitValue, Source: e},
		}

	default:
		return nil
	}
}

// NormalizeAll expands every transaction in order.
func NormalizeAll(entries []*RawEntry) []Posting {
	var postings []Posting
	for _, e := range entries {
		postings = append(postings, Normalize(e)...)
	}
	return postings
}

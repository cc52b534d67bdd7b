package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgersheet-dev/ledgersheet/chart"
	"github.com/ledgersheet-dev/ledgersheet/date"
	"github.com/ledgersheet-dev/ledgersheet/ledger"
	"github.com/ledgersheet-dev/ledgersheet/table"
	"github.com/ledgersheet-dev/ledgersheet/telemetry"
)

// StatementType selects which report Build produces.
type StatementType int

const (
	Income StatementType = iota
	Balance
	Budget
)

// String returns the string representation of the statement type.
func (s StatementType) String() string {
	switch s {
	case Income:
		return "income"
	case Balance:
		return "balance"
	case Budget:
		return "budget"
	default:
		return "unknown"
	}
}

// ParseStatementType parses a statement type name as used on the CLI.
func ParseStatementType(s string) (StatementType, error) {
	switch s {
	case "income":
		return Income, nil
	case "balance":
		return Balance, nil
	case "budget":
		return Budget, nil
	default:
		return Income, fmt.Errorf("unknown statement type %q", s)
	}
}

// Well-known root account names the balance sheet's net-revenue synthesis
// relies on. Their absence is a configuration error of the workbook.
const (
	RootEquity   = "equity"
	RootRevenue  = "revenue"
	RootExchange = "exchange"
	RootExpenses = "expenses"
)

// Input is the set of raw tables one report invocation consumes.
type Input struct {
	AccountTypes table.Table
	Accounts     table.Table
	Currencies   table.Table
	Ledgers      []table.Table
}

// BuildErrors wraps the errors collected while parsing ledger tables.
type BuildErrors struct {
	Errors []error
}

func (e *BuildErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d ledger table errors occurred", len(e.Errors))
}

// Unwrap returns the underlying errors for error unwrapping.
func (e *BuildErrors) Unwrap() []error {
	return e.Errors
}

// Report is the outcome of one invocation: the constructed model and the
// rendered output matrix. Nothing survives across invocations.
type Report struct {
	Statement  StatementType
	Tree       *chart.Tree
	Entries    []*ledger.RawEntry
	Postings   []ledger.Posting
	Periods    []date.Period
	Currencies []string
	Totals     *Totals
	Rows       table.Matrix

	// Dropped counts ledger rows silently omitted during parsing.
	Dropped int
}

// Build runs the full pipeline for one statement: chart construction, ledger
// parsing, posting normalization, period derivation, aggregation, and
// rendering. The input tables are read fresh; no state is shared between
// invocations. An empty posting set is a fatal precondition since periods
// derive from the earliest and latest posting dates.
func Build(ctx context.Context, in Input, st StatementType) (*Report, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("report.build %s", st))
	defer timer.End()

	chartTimer := timer.Child("chart.construct")
	tree := ledger.ParseAccountTypes(in.AccountTypes)
	ledger.ParseAccounts(in.Accounts, tree)
	currencies := ledger.ParseCurrencies(in.Currencies)
	chartTimer.End()

	parseTimer := timer.Child(fmt.Sprintf("ledger.parse (%d tables)", len(in.Ledgers)))
	var (
		entries []*ledger.RawEntry
		dropped int
		errs    []error
	)
	for i, tbl := range in.Ledgers {
		tableEntries, tableDropped, err := ledger.ParseLedger(tbl, tree)
		if err != nil {
			errs = append(errs, fmt.Errorf("ledger table %d: %w", i+1, err))
			continue
		}
		entries = append(entries, tableEntries...)
		dropped += tableDropped
	}
	parseTimer.End()
	if len(errs) > 0 {
		return nil, &BuildErrors{Errors: errs}
	}

	postings := ledger.NormalizeAll(entries)
	if len(postings) == 0 {
		return nil, fmt.Errorf("no postings: cannot derive reporting periods from an empty ledger")
	}

	periods, err := derivePeriods(postings, st)
	if err != nil {
		return nil, err
	}

	roots := statementRoots(tree, st)
	filter := statementFilter(st)

	aggregateTimer := timer.Child(fmt.Sprintf("report.aggregate (%d roots, %d periods)", len(roots), len(periods)))
	totals := Aggregate(roots, postings, periods, currencies, filter)

	if st == Balance {
		if err := injectBalanceNetRevenue(tree, totals, postings, periods, currencies); err != nil {
			aggregateTimer.End()
			return nil, err
		}
	}
	aggregateTimer.End()

	renderTimer := timer.Child("report.render")
	rows := Render(roots, totals, st == Balance)
	renderTimer.End()

	return &Report{
		Statement:  st,
		Tree:       tree,
		Entries:    entries,
		Postings:   postings,
		Periods:    periods,
		Currencies: currencies,
		Totals:     totals,
		Rows:       rows,
		Dropped:    dropped,
	}, nil
}

// derivePeriods produces the month buckets covering the posting dates. Budget
// views bucket by promised-payment terms, so their range covers the effective
// dates instead; otherwise a future-dated obligation would fall outside every
// period.
func derivePeriods(postings []ledger.Posting, st StatementType) ([]date.Period, error) {
	dates := make([]time.Time, len(postings))
	for i, p := range postings {
		if st == Budget {
			dates[i] = p.EffectiveDate()
		} else {
			dates[i] = p.Date
		}
	}
	min, max, _ := date.Span(dates)
	return date.MonthsCovering(min, max)
}

// statementRoots selects which root accounts a statement walks, in tree
// order: income-statement-classified roots for the income statement,
// balance-sheet-classified roots for the balance sheet, and every root for
// the budget review.
func statementRoots(tree *chart.Tree, st StatementType) []*chart.Account {
	if st == Budget {
		return tree.Roots
	}

	want := chart.BalanceSheet
	if st == Income {
		want = chart.IncomeStatement
	}
	var roots []*chart.Account
	for _, root := range tree.Roots {
		if root.Info.Statement == want {
			roots = append(roots, root)
		}
	}
	return roots
}

func statementFilter(st StatementType) DateFilter {
	switch st {
	case Balance:
		return AsOf
	case Budget:
		return ByTerm
	default:
		return Flow
	}
}

// injectBalanceNetRevenue aggregates the income-statement roots under the
// balance sheet's point-in-time filter and injects the synthetic Net Revenue
// account under equity. The four well-known roots must be declared.
func injectBalanceNetRevenue(tree *chart.Tree, totals *Totals, postings []ledger.Posting, periods []date.Period, currencies []string) error {
	equity := tree.Find(RootEquity)
	revenue := tree.Find(RootRevenue)
	exchange := tree.Find(RootExchange)
	expenses := tree.Find(RootExpenses)
	for name, account := range map[string]*chart.Account{
		RootEquity:   equity,
		RootRevenue:  revenue,
		RootExchange: exchange,
		RootExpenses: expenses,
	} {
		if account == nil {
			return fmt.Errorf("balance sheet requires account %q to be declared", name)
		}
	}

	source := Aggregate([]*chart.Account{revenue, exchange, expenses}, postings, periods, currencies, AsOf)
	InjectNetRevenue(totals, source, equity, revenue, exchange, expenses)
	return nil
}

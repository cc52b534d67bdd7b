// Package loader reads a workbook: a directory of CSV tables supplying one
// report invocation. A workbook contains the three configuration tables plus
// any number of ledger tables, merged into a single input set:
//
//	workbook/
//	  account_types.csv
//	  accounts.csv
//	  currencies.csv
//	  ledgers/
//	    2024-general.csv
//	    2024-liabilities.csv
//
// Ledger files are loaded in lexical order so repeated loads of an unchanged
// workbook produce identical inputs.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"

	"github.com/ledgersheet-dev/ledgersheet/report"
	"github.com/ledgersheet-dev/ledgersheet/table"
	"github.com/ledgersheet-dev/ledgersheet/telemetry"
)

// Workbook file conventions.
const (
	AccountTypesFile  = "account_types.csv"
	AccountsFile      = "accounts.csv"
	CurrenciesFile    = "currencies.csv"
	DefaultLedgerGlob = "ledgers/*.csv"
)

// Loader reads workbooks from disk.
type Loader struct {
	// LedgerGlob is the pattern, relative to the workbook directory, that
	// selects ledger table files.
	LedgerGlob string
}

// Option configures how workbooks are loaded.
type Option func(*Loader)

// WithLedgerGlob overrides the pattern used to find ledger tables.
func WithLedgerGlob(glob string) Option {
	return func(l *Loader) {
		l.LedgerGlob = glob
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{LedgerGlob: DefaultLedgerGlob}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Workbook holds the raw tables of one workbook directory.
type Workbook struct {
	Dir          string
	AccountTypes table.Table
	Accounts     table.Table
	Currencies   table.Table
	Ledgers      []table.Table

	// LedgerFiles are the absolute paths the ledger tables came from, in
	// load order. The web viewer watches these for changes.
	LedgerFiles []string
}

// Input converts the workbook into the report engine's input set.
func (w *Workbook) Input() report.Input {
	return report.Input{
		AccountTypes: w.AccountTypes,
		Accounts:     w.Accounts,
		Currencies:   w.Currencies,
		Ledgers:      w.Ledgers,
	}
}

// Load reads a workbook directory. The three configuration tables are
// required; a workbook without ledger files loads successfully and fails
// later at the engine's empty-posting precondition.
func (l *Loader) Load(ctx context.Context, dir string) (*Workbook, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("loader.load %s", filepath.Base(dir)))
	defer timer.End()

	w := &Workbook{Dir: dir}

	var err error
	if w.AccountTypes, err = readTable(filepath.Join(dir, AccountTypesFile)); err != nil {
		return nil, err
	}
	if w.Accounts, err = readTable(filepath.Join(dir, AccountsFile)); err != nil {
		return nil, err
	}
	if w.Currencies, err = readTable(filepath.Join(dir, CurrenciesFile)); err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(dir, l.LedgerGlob))
	if err != nil {
		return nil, fmt.Errorf("resolving ledger glob %q: %w", l.LedgerGlob, err)
	}
	slices.Sort(files)

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tbl, err := readTable(file)
		if err != nil {
			return nil, err
		}
		abs, err := filepath.Abs(file)
		if err != nil {
			abs = file
		}
		w.Ledgers = append(w.Ledgers, tbl)
		w.LedgerFiles = append(w.LedgerFiles, abs)
	}
	return w, nil
}

func readTable(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	tbl, err := table.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/ledgersheet-dev/ledgersheet/loader"
	"github.com/ledgersheet-dev/ledgersheet/output"
	"github.com/ledgersheet-dev/ledgersheet/report"
	"github.com/ledgersheet-dev/ledgersheet/telemetry"
)

type ReportCmd struct {
	Workbook  string `help:"Workbook directory with account, currency and ledger tables." arg:"" type:"existingdir"`
	Statement string `help:"Statement to render." enum:"income,balance,budget" default:"income"`
	Format    string `help:"Output format." enum:"table,csv" default:"table"`
	Dump      bool   `help:"Dump the report model instead of rendering."`
}

func (cmd *ReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	rep, err := buildStatement(ctx, globals, cmd.Workbook, cmd.Statement)
	if err != nil {
		return err
	}

	if cmd.Dump {
		repr.Println(rep.Totals)
		return nil
	}

	if cmd.Format == "csv" {
		if err := rep.Rows.WriteCSV(ctx.Stdout); err != nil {
			return err
		}
	} else {
		renderMatrix(ctx.Stdout, rep.Rows)
	}

	if rep.Dropped > 0 {
		printNote(ctx.Stderr, fmt.Sprintf("%d ledger row(s) dropped (unresolved accounts or malformed cells)", rep.Dropped))
	}
	return nil
}

// buildStatement runs the loader and engine for one statement, wiring
// telemetry and styled error output. Build failures are printed here and
// reported to main as an exit code.
func buildStatement(ctx *kong.Context, globals *Globals, workbook, statement string) (*report.Report, error) {
	st, err := report.ParseStatementType(statement)
	if err != nil {
		return nil, err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var rootTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				rootTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		rootTimer = collector.Start(fmt.Sprintf("%s %s", statement, filepath.Base(workbook)))
		defer reportTelemetry()
	}

	ldr := loader.New()
	wb, err := ldr.Load(runCtx, workbook)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		reportTelemetry()
		return nil, NewCommandError(1)
	}

	rep, err := report.Build(runCtx, wb.Input(), st)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		reportTelemetry()
		return nil, NewCommandError(1)
	}
	return rep, nil
}

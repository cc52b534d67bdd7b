package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ledgersheet-dev/ledgersheet/telemetry"
	"github.com/ledgersheet-dev/ledgersheet/web"
)

type WebCmd struct {
	Workbook string `help:"Workbook directory with account, currency and ledger tables." arg:"" type:"existingdir"`
	Port     int    `help:"Port to listen on." default:"8179"`
	Watch    bool   `help:"Reload the workbook when its files change."`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)
	}

	server := web.New(cmd.Port, cmd.Workbook)
	server.Version = Version
	server.CommitSHA = CommitSHA
	server.WatchEnabled = cmd.Watch

	printInfof(ctx.Stdout, "Serving statements from %s on http://%s:%d", cmd.Workbook, server.Host, server.Port)
	if cmd.Watch {
		printInfof(ctx.Stdout, "Watching workbook for changes")
	}

	return server.Start(runCtx)
}

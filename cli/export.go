package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type ExportCmd struct {
	Workbook  string `help:"Workbook directory with account, currency and ledger tables." arg:"" type:"existingdir"`
	Statement string `help:"Statement to export." enum:"income,balance,budget" default:"income"`
	Out       string `help:"Destination CSV file." required:""`
	Force     bool   `help:"Overwrite the destination without asking."`
}

func (cmd *ExportCmd) Run(ctx *kong.Context, globals *Globals) error {
	if _, err := os.Stat(cmd.Out); err == nil && !cmd.Force {
		overwrite, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.Out))
		if err != nil {
			return err
		}
		if !overwrite {
			printError(ctx.Stderr, fmt.Sprintf("%s already exists (use --force to overwrite)", cmd.Out))
			return NewCommandError(1)
		}
	}

	rep, err := buildStatement(ctx, globals, cmd.Workbook, cmd.Statement)
	if err != nil {
		return err
	}

	f, err := os.Create(cmd.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cmd.Out, err)
	}
	defer f.Close()

	if err := rep.Rows.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Out, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote %s statement to %s", cmd.Statement, cmd.Out))
	if rep.Dropped > 0 {
		printNote(ctx.Stderr, fmt.Sprintf("%d ledger row(s) dropped (unresolved accounts or malformed cells)", rep.Dropped))
	}
	return nil
}

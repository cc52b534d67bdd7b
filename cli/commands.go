package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Report ReportCmd `cmd:"" help:"Render a statement from a workbook directory."`
	Export ExportCmd `cmd:"" help:"Write a statement from a workbook directory to a CSV file."`
	Web    WebCmd    `cmd:"" help:"Serve statements as JSON over HTTP."`
}

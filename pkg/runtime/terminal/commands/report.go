package commands

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/wellness-atlas/pkg/store/artifacts"
	"github.com/spf13/cobra"
)

const formatTable = "table"

type ReportCmd struct {
	format string
}

func NewReportCmd(runner *Runner) *cobra.Command {
	rc := &ReportCmd{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the wellness report of a user",
		Args:  cobra.NoArgs,
		RunE:  runner.Wrap(rc.run),
	}

	cmd.Flags().StringVar(&rc.format, "format", formatTable, "Output format: table, html or json")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, env *Env, _ []string) error {
	switch rc.format {
	case formatTable, string(artifacts.FormatHTML), string(artifacts.FormatJSON):
	default:
		return fmt.Errorf("unsupported format %q, expected table, html or json", rc.format)
	}

	req, err := env.Request()
	if err != nil {
		return err
	}
	a, err := env.Controller().Generate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if rc.format == formatTable {
		return export.NewReporter(cmd.OutOrStdout()).Handle(&a.Document)
	}
	body, err := artifacts.Render(a, artifacts.Format(rc.format))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(body)
	return err
}

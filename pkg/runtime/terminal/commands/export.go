package commands

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/store/artifacts"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	out     string
	formats string
}

func NewExportCmd(runner *Runner) *cobra.Command {
	ec := &ExportCmd{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write report artifacts to a directory or an s3:// destination",
		Args:  cobra.NoArgs,
		RunE:  runner.Wrap(ec.run),
	}

	cmd.Flags().StringVar(&ec.out, "out", "", "Destination directory or s3://bucket/prefix (defaults to the configured artifacts destination)")
	cmd.Flags().StringVar(&ec.formats, "formats", "", "Comma separated formats: csv,html,txt,json (defaults to all)")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, env *Env, _ []string) error {
	ctx := cmd.Context()

	formats, err := artifacts.ParseFormats(ec.formats)
	if err != nil {
		return err
	}
	req, err := env.Request()
	if err != nil {
		return err
	}

	destination := ec.out
	if destination == "" {
		destination = env.Settings.ArtifactsDestination()
	}
	s3 := env.Settings.Artifacts.S3
	sink, err := artifacts.NewSink(ctx, destination, artifacts.S3Options{Profile: s3.Profile, Region: s3.Region})
	if err != nil {
		return err
	}

	a, err := env.Controller().Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	locations, err := artifacts.Publish(ctx, sink, a, formats)
	for _, location := range locations {
		fmt.Fprintln(cmd.OutOrStdout(), location)
	}
	return err
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSummaryCmd(runner *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the plain-text wellness summary of a user",
		Args:  cobra.NoArgs,
		RunE: runner.Wrap(func(cmd *cobra.Command, env *Env, _ []string) error {
			req, err := env.Request()
			if err != nil {
				return err
			}
			a, err := env.Controller().Generate(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.Summary)
			return err
		}),
	}
}

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/spf13/cobra"
)

func NewStatsCmd(runner *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics snapshot and insights of a user as JSON",
		Args:  cobra.NoArgs,
		RunE: runner.Wrap(func(cmd *cobra.Command, env *Env, _ []string) error {
			req, err := env.Request()
			if err != nil {
				return err
			}
			st, err := env.Controller().Statistics(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to compute statistics: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(adapters.MapStatisticsDomainToApi(*st))
		}),
	}
}

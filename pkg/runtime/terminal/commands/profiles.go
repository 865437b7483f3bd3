package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

func NewProfilesCmd(runner *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the known user profiles",
		Args:  cobra.NoArgs,
		RunE: runner.Wrap(func(cmd *cobra.Command, env *Env, _ []string) error {
			ctx := cmd.Context()
			profiles, err := env.ListProfiles(ctx)
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles found")
				return nil
			}
			for _, id := range profiles {
				if env.Profiles == nil {
					fmt.Fprintln(cmd.OutOrStdout(), id)
					continue
				}
				profile, err := env.Profiles.GetProfile(ctx, id)
				if err != nil && !errors.Is(err, config.ErrProfileNotFound) {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, profile)
			}
			return nil
		}),
	}
}

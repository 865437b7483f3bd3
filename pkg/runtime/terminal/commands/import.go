package commands

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb/records"
	"github.com/de-tools/wellness-atlas/pkg/store/file"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ImportCmd struct {
	flags *GlobalFlags
}

// NewImportCmd reads a JSON export and stores it in the configured DuckDB
// database. It ignores --source.
func NewImportCmd(flags *GlobalFlags) *cobra.Command {
	ic := &ImportCmd{flags: flags}
	return &cobra.Command{
		Use:   "import <export.json>",
		Short: "Normalize a JSON export and ingest it into DuckDB",
		Args:  cobra.ExactArgs(1),
		RunE:  ic.run,
	}
}

func (ic *ImportCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	settings, err := config.LoadSettings(ic.flags.ConfigPath)
	if err != nil {
		return err
	}
	loc, err := settings.TimeLocation()
	if err != nil {
		return err
	}
	src, err := file.Load(args[0], adapters.NewNormalizer(loc))
	if err != nil {
		return err
	}

	db, store, err := OpenStore(settings)
	if err != nil {
		return err
	}
	defer db.Close()

	users := []string{ic.flags.User}
	if ic.flags.User == "" {
		if users, err = src.ListUsers(ctx); err != nil {
			return err
		}
	}

	for _, user := range users {
		recs, err := src.Records(ctx, user)
		if err != nil {
			return fmt.Errorf("failed to normalize records of %s: %w", user, err)
		}
		if err := records.Import(ctx, db, store, user, recs); err != nil {
			return fmt.Errorf("failed to import records of %s: %w", user, err)
		}
		logger.Info().
			Str("user", user).
			Int("moods", len(recs.Moods)).
			Int("tasks", len(recs.Tasks)).
			Int("check_ins", len(recs.CheckIns)).
			Msg("records imported")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d moods, %d tasks, %d check-ins\n",
			user, len(recs.Moods), len(recs.Tasks), len(recs.CheckIns))
	}
	return nil
}

package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb/records"
	"github.com/de-tools/wellness-atlas/pkg/store/file"
)

const SourceDuckDB = "duckdb"

var ErrUserFlagRequired = errors.New("--user is required")

// GlobalFlags are the persistent flags of the root command
type GlobalFlags struct {
	ConfigPath string
	Source     string
	User       string
	Now        string
	Verbose    bool
}

// Env holds the collaborators resolved from the global flags for one invocation.
type Env struct {
	Flags    *GlobalFlags
	Settings *config.Settings
	Location *time.Location
	Profiles config.Registry
	Records  report.RecordSource
	Clock    func() time.Time

	listUsers func(ctx context.Context) ([]string, error)
	db        *sql.DB
}

func Open(_ context.Context, flags *GlobalFlags, clock func() time.Time) (*Env, error) {
	settings, err := config.LoadSettings(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	loc, err := settings.TimeLocation()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}

	env := &Env{Flags: flags, Settings: settings, Location: loc, Clock: clock}
	if settings.ProfilesPath != "" {
		registry, err := config.NewRegistry(settings.ProfilesPath)
		if err != nil {
			return nil, err
		}
		env.Profiles = registry
	}

	switch flags.Source {
	case "", SourceDuckDB:
		db, store, err := OpenStore(settings)
		if err != nil {
			return nil, err
		}
		src, err := records.NewSource(store, adapters.NewNormalizer(loc))
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		env.db, env.Records, env.listUsers = db, src, src.ListUsers
	default:
		src, err := file.Load(flags.Source, adapters.NewNormalizer(loc))
		if err != nil {
			return nil, err
		}
		env.Records, env.listUsers = src, src.ListUsers
	}
	return env, nil
}

// OpenStore opens the configured DuckDB database and its record store.
func OpenStore(settings *config.Settings) (*sql.DB, records.Store, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.Database.Path})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	store, err := records.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create record store: %w", err)
	}
	return db, store, nil
}

func (e *Env) Close() error {
	if e.db == nil {
		return nil
	}
	return e.db.Close()
}

func (e *Env) Controller() report.Controller {
	opts := []report.Option{report.WithLocation(e.Location), report.WithClock(e.Clock)}
	if e.Profiles == nil {
		return report.NewController(e.Records, nil, opts...)
	}
	return report.NewController(e.Records, e.Profiles, opts...)
}

// Request builds the report request from --user and --now.
func (e *Env) Request() (report.Request, error) {
	if e.Flags.User == "" {
		return report.Request{}, ErrUserFlagRequired
	}
	req := report.Request{UserID: e.Flags.User}
	if e.Flags.Now != "" {
		now, err := report.ParseDay(e.Flags.Now, e.Location)
		if err != nil {
			return report.Request{}, err
		}
		req.Now = now
	}
	return req, nil
}

// ListProfiles prefers the profile registry and falls back to the users found in the records.
func (e *Env) ListProfiles(ctx context.Context) ([]string, error) {
	if e.Profiles != nil {
		return e.Profiles.GetProfiles(ctx)
	}
	return e.listUsers(ctx)
}

package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const MoodEntriesSchema = `
	CREATE TABLE IF NOT EXISTS mood_entries (
		id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		mood INTEGER NOT NULL,
		mood_label VARCHAR,
		description VARCHAR,
		recorded_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, id)
	);
`

const TasksSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		category VARCHAR,
		difficulty_level VARCHAR,
		completed BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ NULL,
		PRIMARY KEY (user_id, id)
	);
`

const CheckInsSchema = `
	CREATE TABLE IF NOT EXISTS check_ins (
		id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		check_in_date DATE NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, check_in_date)
	);
`

var bootQueries = []string{
	MoodEntriesSchema,
	TasksSchema,
	CheckInsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			if _, err := exec.ExecContext(context.Background(), query, nil); err != nil {
				return fmt.Errorf("boot query: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sql.OpenDB(c), nil
}

// InTransaction runs fn with a transaction bound to ctx, committing on success.
func InTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(WithTransaction(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

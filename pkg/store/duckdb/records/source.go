package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/models/store"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb"
)

// Source serves domain records of a user out of a Store, with every time expressed
// in the normalizer location.
type Source struct {
	store      Store
	normalizer adapters.Normalizer
}

func NewSource(s Store, normalizer adapters.Normalizer) (*Source, error) {
	if s == nil {
		return nil, fmt.Errorf("record store is nil")
	}
	return &Source{store: s, normalizer: normalizer}, nil
}

func (s *Source) GetMoodEntries(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	rows, err := s.store.ListMoodEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.MoodEntry, 0, len(rows))
	for _, r := range rows {
		res = append(res, s.normalizer.LocalMood(adapters.MapStoreMoodToDomain(r)))
	}
	return res, nil
}

func (s *Source) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := s.store.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Task, 0, len(rows))
	for _, r := range rows {
		res = append(res, s.normalizer.LocalTask(adapters.MapStoreTaskToDomain(r)))
	}
	return res, nil
}

func (s *Source) GetCheckIns(ctx context.Context, userID string) ([]domain.CheckIn, error) {
	rows, err := s.store.ListCheckIns(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.CheckIn, 0, len(rows))
	for _, r := range rows {
		res = append(res, s.normalizer.LocalCheckIn(adapters.MapStoreCheckInToDomain(r)))
	}
	return res, nil
}

func (s *Source) ListUsers(ctx context.Context) ([]string, error) {
	return s.store.ListUsers(ctx)
}

// Import writes the records of one user in a single transaction.
func Import(ctx context.Context, db *sql.DB, s Store, userID string, records domain.Records) error {
	moods := make([]store.MoodRecord, 0, len(records.Moods))
	for _, m := range records.Moods {
		moods = append(moods, adapters.MapDomainMoodToStore(m))
	}
	tasks := make([]store.TaskRecord, 0, len(records.Tasks))
	for _, t := range records.Tasks {
		tasks = append(tasks, adapters.MapDomainTaskToStore(t))
	}
	checkIns := make([]store.CheckInRecord, 0, len(records.CheckIns))
	for _, c := range records.CheckIns {
		checkIns = append(checkIns, adapters.MapDomainCheckInToStore(c))
	}

	return duckdb.InTransaction(ctx, db, func(ctx context.Context) error {
		if err := s.AddMoodEntries(ctx, userID, moods); err != nil {
			return err
		}
		if err := s.AddTasks(ctx, userID, tasks); err != nil {
			return err
		}
		return s.AddCheckIns(ctx, userID, checkIns)
	})
}

package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/models/store"
)

// Source serves records out of a JSON export loaded once. Records are normalized
// on every request, so a malformed record only fails the collection holding it.
type Source struct {
	export     store.RecordsExport
	normalizer adapters.Normalizer
}

func Load(path string, normalizer adapters.Normalizer) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	return NewSource(f, normalizer)
}

func NewSource(r io.Reader, normalizer adapters.Normalizer) (*Source, error) {
	var export store.RecordsExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return &Source{export: export, normalizer: normalizer}, nil
}

func (s *Source) ListUsers(_ context.Context) ([]string, error) {
	users := make([]string, 0, len(s.export.Users))
	for id := range s.export.Users {
		users = append(users, id)
	}
	slices.Sort(users)
	return users, nil
}

// Records normalizes every collection of one user. Unknown users have no records.
func (s *Source) Records(_ context.Context, userID string) (domain.Records, error) {
	return s.normalizer.Records(s.export.Users[userID])
}

func (s *Source) GetMoodEntries(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := s.export.Users[userID].Moods
	res := make([]domain.MoodEntry, 0, len(raw))
	for _, r := range raw {
		m, err := s.normalizer.MoodEntry(r)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

func (s *Source) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := s.export.Users[userID].Tasks
	res := make([]domain.Task, 0, len(raw))
	for _, r := range raw {
		t, err := s.normalizer.Task(r)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func (s *Source) GetCheckIns(ctx context.Context, userID string) ([]domain.CheckIn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := s.export.Users[userID].CheckIns
	res := make([]domain.CheckIn, 0, len(raw))
	for _, r := range raw {
		c, err := s.normalizer.CheckIn(r)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

package adapters

import (
	"database/sql"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/models/store"
)

func MapStoreMoodToDomain(r store.MoodRecord) domain.MoodEntry {
	return domain.MoodEntry{
		ID:          r.ID,
		Mood:        r.Mood,
		MoodLabel:   r.MoodLabel.String,
		Description: r.Description.String,
		Timestamp:   r.RecordedAt,
	}
}

func MapDomainMoodToStore(m domain.MoodEntry) store.MoodRecord {
	return store.MoodRecord{
		ID:          m.ID,
		Mood:        m.Mood,
		MoodLabel:   nullString(m.MoodLabel),
		Description: nullString(m.Description),
		RecordedAt:  m.Timestamp,
	}
}

func MapStoreTaskToDomain(r store.TaskRecord) domain.Task {
	task := domain.Task{
		ID:              r.ID,
		Title:           r.Title,
		Category:        r.Category.String,
		DifficultyLevel: r.DifficultyLevel.String,
		Completed:       r.Completed,
		CreatedAt:       r.CreatedAt,
	}
	if r.CompletedAt.Valid {
		completed := r.CompletedAt.Time
		task.CompletedAt = &completed
	}
	return task
}

func MapDomainTaskToStore(t domain.Task) store.TaskRecord {
	record := store.TaskRecord{
		ID:              t.ID,
		Title:           t.Title,
		Category:        nullString(t.Category),
		DifficultyLevel: nullString(t.DifficultyLevel),
		Completed:       t.Completed,
		CreatedAt:       t.CreatedAt,
	}
	if t.CompletedAt != nil {
		record.CompletedAt = sql.NullTime{Time: *t.CompletedAt, Valid: true}
	}
	return record
}

// MapStoreCheckInToDomain keeps the stored calendar date as-is. DATE columns come
// back as UTC midnight and day numbers are read from the date's own fields.
func MapStoreCheckInToDomain(r store.CheckInRecord) domain.CheckIn {
	return domain.CheckIn{
		ID:        r.ID,
		Date:      r.CheckInDate,
		Timestamp: r.RecordedAt,
	}
}

func MapDomainCheckInToStore(c domain.CheckIn) store.CheckInRecord {
	y, m, d := c.Date.Date()
	recorded := c.Timestamp
	if recorded.IsZero() {
		recorded = c.Date
	}
	return store.CheckInRecord{
		ID:          c.ID,
		CheckInDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		RecordedAt:  recorded,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

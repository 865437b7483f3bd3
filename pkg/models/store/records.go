package store

import (
	"database/sql"
	"encoding/json"
	"time"
)

// MoodRecord is a row of the mood_entries table
type MoodRecord struct {
	ID          string
	Mood        int
	MoodLabel   sql.NullString
	Description sql.NullString
	RecordedAt  time.Time
}

// TaskRecord is a row of the tasks table
type TaskRecord struct {
	ID              string
	Title           string
	Category        sql.NullString
	DifficultyLevel sql.NullString
	Completed       bool
	CreatedAt       time.Time
	CompletedAt     sql.NullTime
}

// CheckInRecord is a row of the check_ins table, unique per user and date
type CheckInRecord struct {
	ID          string
	CheckInDate time.Time
	RecordedAt  time.Time
}

// RecordsExport is the JSON export layout read by the file store. Timestamps are
// kept raw because exports mix calendar-day strings, RFC 3339 strings, epoch
// milliseconds and {seconds, nanoseconds} objects.
type RecordsExport struct {
	Users map[string]UserExport `json:"users"`
}

type UserExport struct {
	Moods    []RawMoodEntry `json:"moods"`
	Tasks    []RawTask      `json:"tasks"`
	CheckIns []RawCheckIn   `json:"checkIns"`
}

type RawMoodEntry struct {
	ID          string          `json:"id"`
	Mood        int             `json:"mood"`
	MoodLabel   string          `json:"moodLabel"`
	Description string          `json:"description"`
	Timestamp   json.RawMessage `json:"timestamp"`
}

type RawTask struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	DifficultyLevel string          `json:"difficultyLevel"`
	Completed       bool            `json:"completed"`
	CreatedAt       json.RawMessage `json:"createdAt"`
	CompletedAt     json.RawMessage `json:"completedAt"`
}

type RawCheckIn struct {
	ID        string          `json:"id"`
	Date      json.RawMessage `json:"date"`
	Timestamp json.RawMessage `json:"timestamp"`
}

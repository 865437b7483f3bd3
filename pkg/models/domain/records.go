package domain

import "time"

const (
	MinMoodScore = 0
	MaxMoodScore = 10

	DefaultMoodLabel       = "Unknown"
	DefaultTaskCategory    = "Uncategorized"
	DefaultTaskDifficulty  = "Unknown"
	DefaultMoodDescription = "No description"
)

// MoodEntry is a single self-reported mood rating
type MoodEntry struct {
	ID          string
	Mood        int    // 0..10
	MoodLabel   string // "Happy"
	Description string
	Timestamp   time.Time
}

// Score returns the mood rating clamped to the valid scale.
func (m MoodEntry) Score() int {
	switch {
	case m.Mood < MinMoodScore:
		return MinMoodScore
	case m.Mood > MaxMoodScore:
		return MaxMoodScore
	default:
		return m.Mood
	}
}

func (m MoodEntry) Label() string {
	if m.MoodLabel == "" {
		return DefaultMoodLabel
	}
	return m.MoodLabel
}

type Task struct {
	ID              string
	Title           string
	Category        string
	DifficultyLevel string
	Completed       bool
	CreatedAt       time.Time
	CompletedAt     *time.Time // set only for completed tasks
}

func (t Task) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultTaskCategory
	}
	return t.Category
}

func (t Task) DifficultyOrDefault() string {
	if t.DifficultyLevel == "" {
		return DefaultTaskDifficulty
	}
	return t.DifficultyLevel
}

// CheckIn marks a calendar day on which the user checked in. Date carries the day,
// its time of day is ignored.
type CheckIn struct {
	ID        string
	Date      time.Time
	Timestamp time.Time
}

// Records bundles the three collections a report is computed from.
type Records struct {
	Moods    []MoodEntry
	Tasks    []Task
	CheckIns []CheckIn
}

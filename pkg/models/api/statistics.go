package api

import "time"

type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type MoodStats struct {
	Total        int          `json:"total"`
	Average      float64      `json:"average"`
	Highest      int          `json:"highest"`
	Lowest       int          `json:"lowest"`
	MostFrequent string       `json:"most_frequent"`
	Distribution []CountEntry `json:"distribution"`
	Trend        string       `json:"trend"`
}

type TaskStats struct {
	Total          int          `json:"total"`
	Completed      int          `json:"completed"`
	Pending        int          `json:"pending"`
	CompletionRate float64      `json:"completion_rate"`
	ByCategory     []CountEntry `json:"by_category"`
	ByDifficulty   []CountEntry `json:"by_difficulty"`
}

type CheckInStats struct {
	Total         int     `json:"total"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	CheckInRate   float64 `json:"check_in_rate"`
}

// Statistics is the response of the statistics endpoint
type Statistics struct {
	User        UserProfile  `json:"user"`
	GeneratedAt time.Time    `json:"generated_at"`
	Period      *TimePeriod  `json:"period,omitempty"`
	Mood        MoodStats    `json:"mood"`
	Tasks       TaskStats    `json:"tasks"`
	CheckIns    CheckInStats `json:"check_ins"`
	Insights    []string     `json:"insights"`
}

type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

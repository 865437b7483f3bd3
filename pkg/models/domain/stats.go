package domain

import "time"

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

const NotAvailable = "N/A"

type MoodStats struct {
	Total        int
	Average      float64 // rounded to 1 decimal
	Highest      int
	Lowest       int
	MostFrequent string
	Distribution *OrderedCounts // label -> count
	Trend        Trend
}

type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64 // percent, 1 decimal
	ByCategory     *OrderedCounts
	ByDifficulty   *OrderedCounts
}

type CheckInStats struct {
	Total         int
	CurrentStreak int
	LongestStreak int
	CheckInRate   float64 // percent of TimeRange days, 1 decimal
}

// TimeRange spans the earliest and latest mood entry
type TimeRange struct {
	Start time.Time
	End   time.Time
	Days  int
}

// StatisticsSnapshot is computed fresh on every report request and never mutated
// after it is returned.
type StatisticsSnapshot struct {
	Mood      MoodStats
	Tasks     TaskStats
	CheckIns  CheckInStats
	TimeRange *TimeRange
}

// PeriodDays returns the time range day count, 0 when there is no range.
func (s StatisticsSnapshot) PeriodDays() int {
	if s.TimeRange == nil {
		return 0
	}
	return s.TimeRange.Days
}

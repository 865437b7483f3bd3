// Package stats turns the raw mood, task and check-in collections of one user into
// a domain.StatisticsSnapshot. Every function here is pure: inputs are never
// reordered or modified, and identical inputs produce identical snapshots.
package stats

import (
	"cmp"
	"slices"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

const (
	// trendThreshold is the minimum change between the mean of the early and the
	// late half of the entries for a trend to count as improving or declining.
	trendThreshold = 0.5

	day = 24 * time.Hour
)

// Compute builds the full snapshot. now is the reference instant for the current
// streak and is interpreted in its own location.
func Compute(records domain.Records, now time.Time) domain.StatisticsSnapshot {
	timeRange := ComputeTimeRange(records.Moods)
	return domain.StatisticsSnapshot{
		Mood:      ComputeMoodStats(records.Moods),
		Tasks:     ComputeTaskStats(records.Tasks),
		CheckIns:  ComputeCheckInStats(records.CheckIns, timeRange, now),
		TimeRange: timeRange,
	}
}

func ComputeMoodStats(moods []domain.MoodEntry) domain.MoodStats {
	stats := domain.MoodStats{
		Total:        len(moods),
		MostFrequent: domain.NotAvailable,
		Distribution: domain.NewOrderedCounts(),
		Trend:        domain.TrendStable,
	}
	if len(moods) == 0 {
		return stats
	}

	sum := 0
	stats.Lowest = domain.MaxMoodScore + 1
	for _, m := range moods {
		score := m.Score()
		sum += score
		if score > stats.Highest {
			stats.Highest = score
		}
		if score < stats.Lowest {
			stats.Lowest = score
		}
		stats.Distribution.Inc(m.Label())
	}

	stats.Average = format.Round1(float64(sum) / float64(len(moods)))
	stats.MostFrequent = mostFrequent(stats.Distribution)
	stats.Trend = moodTrend(moods)
	return stats
}

// mostFrequent returns the first key, in insertion order, holding the highest count.
func mostFrequent(counts *domain.OrderedCounts) string {
	best, bestCount := domain.NotAvailable, 0
	for _, e := range counts.Entries() {
		if e.Count > bestCount {
			best, bestCount = e.Key, e.Count
		}
	}
	return best
}

func moodTrend(moods []domain.MoodEntry) domain.Trend {
	if len(moods) <= 1 {
		return domain.TrendStable
	}

	sorted := SortedByTimestamp(moods)
	mid := len(sorted) / 2
	first := meanScore(sorted[:mid])
	second := meanScore(sorted[mid:])

	switch {
	case second > first+trendThreshold:
		return domain.TrendImproving
	case second < first-trendThreshold:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func meanScore(moods []domain.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Score()
	}
	return float64(sum) / float64(len(moods))
}

func ComputeTaskStats(tasks []domain.Task) domain.TaskStats {
	stats := domain.TaskStats{
		Total:        len(tasks),
		ByCategory:   domain.NewOrderedCounts(),
		ByDifficulty: domain.NewOrderedCounts(),
	}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		stats.ByCategory.Inc(t.CategoryOrDefault())
		stats.ByDifficulty.Inc(t.DifficultyOrDefault())
	}
	stats.Pending = stats.Total - stats.Completed
	stats.CompletionRate = format.Percent(stats.Completed, stats.Total)
	return stats
}

// ComputeCheckInStats derives streaks from the calendar days of the check-ins.
// A streak continues only across a gap of exactly one day. The current streak is the
// most recent streak, counted only while its newest day is today or yesterday.
func ComputeCheckInStats(checkIns []domain.CheckIn, timeRange *domain.TimeRange, now time.Time) domain.CheckInStats {
	stats := domain.CheckInStats{Total: len(checkIns)}
	if timeRange != nil && timeRange.Days > 0 {
		stats.CheckInRate = format.Round1(float64(stats.Total) / float64(timeRange.Days) * 100)
	}
	if len(checkIns) == 0 {
		return stats
	}

	days := make([]int, 0, len(checkIns))
	for _, c := range checkIns {
		days = append(days, DayNumber(c.Date))
	}
	slices.SortFunc(days, func(a, b int) int { return cmp.Compare(b, a) })

	_, stats.LongestStreak = streaks(days)

	// days after today never belong to the current run
	today := DayNumber(now)
	past := days
	for len(past) > 0 && past[0] > today {
		past = past[1:]
	}
	if len(past) > 0 && today-past[0] <= 1 {
		stats.CurrentStreak, _ = streaks(past)
	}
	return stats
}

// streaks walks descending day numbers and returns the length of the first run and
// of the longest run.
func streaks(days []int) (recent, longest int) {
	run := 1
	recentOpen := true
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] == 1 {
			run++
		} else {
			if recentOpen {
				recent, recentOpen = run, false
			}
			run = 1
		}
		longest = max(longest, run)
	}
	if recentOpen {
		recent = run
	}
	return recent, longest
}

// ComputeTimeRange spans the earliest and latest mood entry, nil without entries.
func ComputeTimeRange(moods []domain.MoodEntry) *domain.TimeRange {
	if len(moods) == 0 {
		return nil
	}
	sorted := SortedByTimestamp(moods)
	start, end := sorted[0].Timestamp, sorted[len(sorted)-1].Timestamp

	span := end.Sub(start)
	days := int(span / day)
	if span%day != 0 {
		days++
	}
	return &domain.TimeRange{Start: start, End: end, Days: days}
}

// SortedByTimestamp returns a chronologically sorted copy of moods. Entries sharing
// a timestamp keep their input order.
func SortedByTimestamp(moods []domain.MoodEntry) []domain.MoodEntry {
	sorted := slices.Clone(moods)
	slices.SortStableFunc(sorted, func(a, b domain.MoodEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}

// DayNumber maps the calendar date of t, read in t's own location, to a day index
// where consecutive dates differ by exactly one.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / int64(day/time.Second))
}

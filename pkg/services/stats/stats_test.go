package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return time.Date(2026, 10, 14-n, 0, 0, 0, 0, time.UTC)
}

func mood(score int, label string, ts time.Time) domain.MoodEntry {
	return domain.MoodEntry{ID: fmt.Sprintf("m-%d", ts.Unix()), Mood: score, MoodLabel: label, Timestamp: ts}
}

func checkIns(offsets ...int) []domain.CheckIn {
	res := make([]domain.CheckIn, 0, len(offsets))
	for i, o := range offsets {
		res = append(res, domain.CheckIn{ID: fmt.Sprintf("c-%d", i), Date: daysAgo(o), Timestamp: daysAgo(o).Add(9 * time.Hour)})
	}
	return res
}

func TestCompute_EmptyInputs(t *testing.T) {
	snapshot := Compute(domain.Records{}, now)

	assert.Equal(t, 0, snapshot.Mood.Total)
	assert.Equal(t, 0.0, snapshot.Mood.Average)
	assert.Equal(t, "N/A", snapshot.Mood.MostFrequent)
	assert.Equal(t, domain.TrendStable, snapshot.Mood.Trend)
	assert.Equal(t, 0, snapshot.Mood.Highest)
	assert.Equal(t, 0, snapshot.Mood.Lowest)
	assert.Equal(t, 0, snapshot.Mood.Distribution.Len())
	assert.Equal(t, 0.0, snapshot.Tasks.CompletionRate)
	assert.Equal(t, 0, snapshot.CheckIns.CurrentStreak)
	assert.Equal(t, 0, snapshot.CheckIns.LongestStreak)
	assert.Equal(t, 0.0, snapshot.CheckIns.CheckInRate)
	assert.Nil(t, snapshot.TimeRange)
}

func TestComputeMoodStats_Aggregates(t *testing.T) {
	moods := []domain.MoodEntry{
		mood(7, "Happy", daysAgo(3)),
		mood(0, "Sad", daysAgo(2)),
		mood(9, "Happy", daysAgo(1)),
		mood(5, "", daysAgo(0)),
	}

	stats := ComputeMoodStats(moods)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 5.3, stats.Average) // 21/4 = 5.25, zero still counts
	assert.Equal(t, 9, stats.Highest)
	assert.Equal(t, 0, stats.Lowest)
	assert.Equal(t, "Happy", stats.MostFrequent)
	assert.Equal(t, []string{"Happy", "Sad", "Unknown"}, stats.Distribution.Keys())
	assert.Equal(t, stats.Total, stats.Distribution.Total())
}

func TestComputeMoodStats_MostFrequentTieGoesToFirstSeen(t *testing.T) {
	moods := []domain.MoodEntry{
		mood(5, "Calm", daysAgo(4)),
		mood(5, "Tired", daysAgo(3)),
		mood(5, "Tired", daysAgo(2)),
		mood(5, "Calm", daysAgo(1)),
	}

	stats := ComputeMoodStats(moods)

	assert.Equal(t, "Calm", stats.MostFrequent)
}

func TestComputeMoodStats_ClampsOutOfRangeScores(t *testing.T) {
	stats := ComputeMoodStats([]domain.MoodEntry{
		mood(-4, "Low", daysAgo(1)),
		mood(15, "High", daysAgo(0)),
	})

	assert.Equal(t, 10, stats.Highest)
	assert.Equal(t, 0, stats.Lowest)
	assert.Equal(t, 5.0, stats.Average)
}

func TestMoodTrend(t *testing.T) {
	tests := []struct {
		name     string
		moods    []domain.MoodEntry
		expected domain.Trend
	}{
		{name: "no entries", moods: nil, expected: domain.TrendStable},
		{name: "single entry", moods: []domain.MoodEntry{mood(9, "Happy", daysAgo(0))}, expected: domain.TrendStable},
		{
			name:     "two sequential days improving",
			moods:    []domain.MoodEntry{mood(8, "Good", daysAgo(1)), mood(9, "Great", daysAgo(0))},
			expected: domain.TrendImproving,
		},
		{
			name:     "input order does not matter",
			moods:    []domain.MoodEntry{mood(9, "Great", daysAgo(0)), mood(8, "Good", daysAgo(1))},
			expected: domain.TrendImproving,
		},
		{
			name: "odd count declining",
			moods: []domain.MoodEntry{
				mood(8, "Good", daysAgo(4)),
				mood(4, "Meh", daysAgo(3)),
				mood(5, "Meh", daysAgo(2)),
			},
			expected: domain.TrendDeclining, // [8] vs [4,5]
		},
		{
			name: "even count within threshold",
			moods: []domain.MoodEntry{
				mood(6, "Ok", daysAgo(3)),
				mood(6, "Ok", daysAgo(2)),
				mood(6, "Ok", daysAgo(1)),
				mood(7, "Ok", daysAgo(0)),
			},
			expected: domain.TrendStable, // 6 vs 6.5
		},
		{
			name: "exactly half a point is stable",
			moods: []domain.MoodEntry{
				mood(5, "Ok", daysAgo(1)),
				mood(6, "Ok", daysAgo(0)),
				mood(5, "Ok", daysAgo(3)),
				mood(5, "Ok", daysAgo(2)),
			},
			expected: domain.TrendStable, // [5,5] vs [5,6]
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeMoodStats(tc.moods).Trend)
		})
	}
}

func TestComputeMoodStats_DoesNotMutateInput(t *testing.T) {
	moods := []domain.MoodEntry{
		mood(9, "Great", daysAgo(0)),
		mood(2, "Bad", daysAgo(5)),
		mood(5, "Ok", daysAgo(2)),
	}
	original := append([]domain.MoodEntry(nil), moods...)

	_ = ComputeMoodStats(moods)
	_ = ComputeTimeRange(moods)

	assert.Equal(t, original, moods)
}

func TestComputeTaskStats(t *testing.T) {
	t.Run("half completed", func(t *testing.T) {
		tasks := []domain.Task{{Completed: true}, {Completed: true}, {Completed: false}, {Completed: false}}
		stats := ComputeTaskStats(tasks)

		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 2, stats.Completed)
		assert.Equal(t, 2, stats.Pending)
		assert.Equal(t, 50.0, stats.CompletionRate)
	})

	t.Run("categories and difficulty default and keep order", func(t *testing.T) {
		tasks := []domain.Task{
			{Category: "Work", DifficultyLevel: "Hard", Completed: true},
			{DifficultyLevel: "Easy"},
			{Category: "Work"},
			{Category: "Health", DifficultyLevel: "Easy"},
		}
		stats := ComputeTaskStats(tasks)

		assert.Equal(t, []string{"Work", "Uncategorized", "Health"}, stats.ByCategory.Keys())
		assert.Equal(t, 2, stats.ByCategory.Get("Work"))
		assert.Equal(t, []string{"Hard", "Easy", "Unknown"}, stats.ByDifficulty.Keys())
		assert.Equal(t, 2, stats.ByDifficulty.Get("Easy"))
		assert.Equal(t, 25.0, stats.CompletionRate)
	})

	t.Run("rate rounds to one decimal and stays in bounds", func(t *testing.T) {
		stats := ComputeTaskStats([]domain.Task{{Completed: true}, {}, {}})
		assert.Equal(t, 33.3, stats.CompletionRate)

		all := ComputeTaskStats([]domain.Task{{Completed: true}})
		assert.Equal(t, 100.0, all.CompletionRate)
	})

	t.Run("no tasks", func(t *testing.T) {
		stats := ComputeTaskStats(nil)
		assert.Equal(t, 0.0, stats.CompletionRate)
		assert.Equal(t, 0, stats.Pending)
	})
}

func TestComputeCheckInStats_Streaks(t *testing.T) {
	tests := []struct {
		name            string
		offsets         []int
		expectedCurrent int
		expectedLongest int
	}{
		{name: "three days ending today", offsets: []int{0, 1, 2}, expectedCurrent: 3, expectedLongest: 3},
		{name: "unsorted input", offsets: []int{2, 0, 1}, expectedCurrent: 3, expectedLongest: 3},
		{name: "old streak only", offsets: []int{5, 6}, expectedCurrent: 0, expectedLongest: 2},
		{name: "streak ending yesterday", offsets: []int{1, 2, 3, 4}, expectedCurrent: 4, expectedLongest: 4},
		{name: "single check-in today before a longer streak", offsets: []int{0, 3, 4, 5}, expectedCurrent: 1, expectedLongest: 3},
		{name: "long current streak with older gap", offsets: []int{0, 1, 2, 3, 10, 11}, expectedCurrent: 4, expectedLongest: 4},
		{name: "two days ago is too old", offsets: []int{2, 3}, expectedCurrent: 0, expectedLongest: 2},
		{name: "single check-in", offsets: []int{1}, expectedCurrent: 1, expectedLongest: 1},
		{name: "duplicate day ends the run", offsets: []int{0, 0, 1}, expectedCurrent: 1, expectedLongest: 2},
		{name: "lone check-in tomorrow", offsets: []int{-1}, expectedCurrent: 0, expectedLongest: 1},
		{name: "tomorrow is left out of the current run", offsets: []int{-1, 0, 1}, expectedCurrent: 2, expectedLongest: 3},
		{name: "future run only", offsets: []int{-3, -2}, expectedCurrent: 0, expectedLongest: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats := ComputeCheckInStats(checkIns(tc.offsets...), nil, now)

			assert.Equal(t, len(tc.offsets), stats.Total)
			assert.Equal(t, tc.expectedCurrent, stats.CurrentStreak, "current streak")
			assert.Equal(t, tc.expectedLongest, stats.LongestStreak, "longest streak")
			assert.GreaterOrEqual(t, stats.LongestStreak, stats.CurrentStreak)
		})
	}
}

func TestComputeCheckInStats_UsesCalendarDaysOfNow(t *testing.T) {
	// A check-in two calendar days back no longer counts, whatever the hour.
	justAfterMidnight := time.Date(2026, 10, 15, 0, 5, 0, 0, time.UTC)
	stats := ComputeCheckInStats(checkIns(1, 2), nil, justAfterMidnight)

	assert.Equal(t, 0, stats.CurrentStreak)

	local := time.FixedZone("UTC+10", 10*3600)
	stats = ComputeCheckInStats(checkIns(0, 1), nil, time.Date(2026, 10, 15, 6, 0, 0, 0, local))
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestComputeCheckInStats_Rate(t *testing.T) {
	timeRange := &domain.TimeRange{Start: daysAgo(10), End: daysAgo(0), Days: 10}

	stats := ComputeCheckInStats(checkIns(0, 1, 2, 5, 8), timeRange, now)
	assert.Equal(t, 50.0, stats.CheckInRate)

	stats = ComputeCheckInStats(checkIns(0), &domain.TimeRange{Days: 0}, now)
	assert.Equal(t, 0.0, stats.CheckInRate)

	stats = ComputeCheckInStats(checkIns(0, 1), &domain.TimeRange{Days: 3}, now)
	assert.Equal(t, 66.7, stats.CheckInRate)
}

func TestComputeCheckInStats_DoesNotMutateInput(t *testing.T) {
	in := checkIns(4, 0, 2)
	original := append([]domain.CheckIn(nil), in...)

	_ = ComputeCheckInStats(in, nil, now)

	assert.Equal(t, original, in)
}

func TestComputeTimeRange(t *testing.T) {
	t.Run("no moods", func(t *testing.T) {
		assert.Nil(t, ComputeTimeRange(nil))
	})

	t.Run("single mood", func(t *testing.T) {
		tr := ComputeTimeRange([]domain.MoodEntry{mood(5, "Ok", now)})
		require.NotNil(t, tr)
		assert.Equal(t, 0, tr.Days)
		assert.Equal(t, now, tr.Start)
		assert.Equal(t, now, tr.End)
	})

	t.Run("partial days round up", func(t *testing.T) {
		start := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
		moods := []domain.MoodEntry{
			mood(5, "Ok", start.Add(49*time.Hour)),
			mood(5, "Ok", start),
			mood(5, "Ok", start.Add(12*time.Hour)),
		}
		tr := ComputeTimeRange(moods)
		require.NotNil(t, tr)
		assert.Equal(t, start, tr.Start)
		assert.Equal(t, start.Add(49*time.Hour), tr.End)
		assert.Equal(t, 3, tr.Days)
	})

	t.Run("whole days are exact", func(t *testing.T) {
		tr := ComputeTimeRange([]domain.MoodEntry{mood(5, "Ok", daysAgo(7)), mood(5, "Ok", daysAgo(0))})
		require.NotNil(t, tr)
		assert.Equal(t, 7, tr.Days)
	})
}

func TestCompute_IsDeterministic(t *testing.T) {
	records := domain.Records{
		Moods:    []domain.MoodEntry{mood(3, "Sad", daysAgo(4)), mood(8, "Happy", daysAgo(0)), mood(8, "Happy", daysAgo(2))},
		Tasks:    []domain.Task{{Category: "Work", Completed: true}, {Category: "Home"}},
		CheckIns: checkIns(0, 1, 3),
	}

	first := Compute(records, now)
	second := Compute(records, now)

	assert.Equal(t, first, second)
	assert.Equal(t, 75.0, first.CheckIns.CheckInRate)
	assert.Equal(t, domain.TrendImproving, first.Mood.Trend)
}

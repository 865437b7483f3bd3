package report

import (
	"slices"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/services/stats"
)

const (
	Title = "Wellness Report"

	timelineLimit      = 14
	recentEntriesLimit = 15
	streakWindowDays   = 30

	dominantShare = 30.0
	commonShare   = 15.0

	glyphCompleted = "✓"
	glyphPending   = "○"
)

// DocumentInput is everything the document is assembled from.
type DocumentInput struct {
	Profile     domain.UserProfile
	Records     domain.Records
	Snapshot    domain.StatisticsSnapshot
	Insights    []string
	GeneratedAt time.Time
}

// BuildDocument assembles the semantic report. It performs no I/O and does not modify
// the input records.
func BuildDocument(in DocumentInput) domain.Report {
	return domain.Report{
		Title:  Title,
		Header: buildHeader(in),
		Sections: []domain.ReportSection{
			overviewSection(in.Snapshot),
			moodSection(in),
			recentEntriesSection(in.Records.Moods),
			taskSection(in),
			checkInSection(in),
			insightSection(in.Insights),
		},
	}
}

func buildHeader(in DocumentInput) domain.ReportHeader {
	header := domain.ReportHeader{
		UserName:    in.Profile.Name,
		UserEmail:   in.Profile.Email,
		GeneratedAt: in.GeneratedAt,
	}
	if tr := in.Snapshot.TimeRange; tr != nil {
		header.Period = &domain.TimePeriod{Start: tr.Start, End: tr.End, Duration: tr.Days}
	}
	return header
}

func overviewSection(s domain.StatisticsSnapshot) domain.ReportSection {
	return domain.ReportSection{
		ID:    domain.SectionOverview,
		Title: "Overview",
		Blocks: []domain.ReportBlock{cards(
			domain.StatCard{Label: "Mood Entries", Value: format.Count(s.Mood.Total)},
			domain.StatCard{Label: "Tasks", Value: format.Count(s.Tasks.Total)},
			domain.StatCard{Label: "Check-ins", Value: format.Count(s.CheckIns.Total)},
			domain.StatCard{Label: "Average Mood", Value: format.AverageScore(s.Mood.Average)},
			domain.StatCard{Label: "Completion Rate", Value: format.Rate(s.Tasks.CompletionRate)},
			domain.StatCard{Label: "Current Streak", Value: format.Days(s.CheckIns.CurrentStreak)},
		)},
	}
}

func moodSection(in DocumentInput) domain.ReportSection {
	m := in.Snapshot.Mood

	highest, lowest := domain.NotAvailable, domain.NotAvailable
	if m.Total > 0 {
		highest, lowest = format.Score(m.Highest), format.Score(m.Lowest)
	}

	distribution := &domain.Table{
		Title:   "Mood Distribution",
		Columns: []string{"Mood", "Count", "Percentage", "Frequency"},
	}
	for _, e := range m.Distribution.Entries() {
		share := format.Percent(e.Count, m.Total)
		distribution.Rows = append(distribution.Rows, []string{
			e.Key, format.Count(e.Count), format.Rate(share), frequencyTag(share),
		})
	}

	sorted := stats.SortedByTimestamp(in.Records.Moods)
	if len(sorted) > timelineLimit {
		sorted = sorted[len(sorted)-timelineLimit:]
	}
	timeline := &domain.Series{Title: "Mood Timeline", Kind: domain.SeriesLine, Max: domain.MaxMoodScore}
	for _, entry := range sorted {
		timeline.Points = append(timeline.Points, domain.SeriesPoint{
			Label: format.ShortDate(entry.Timestamp),
			Value: float64(entry.Score()),
		})
	}

	return domain.ReportSection{
		ID:    domain.SectionMood,
		Title: "Mood Analysis",
		Blocks: []domain.ReportBlock{
			cards(
				domain.StatCard{Label: "Highest Mood", Value: highest},
				domain.StatCard{Label: "Lowest Mood", Value: lowest},
				domain.StatCard{Label: "Most Frequent", Value: m.MostFrequent},
			),
			{Kind: domain.BlockTable, Table: distribution},
			{Kind: domain.BlockSeries, Series: timeline},
		},
	}
}

func frequencyTag(share float64) string {
	switch {
	case share >= dominantShare:
		return "Dominant mood"
	case share >= commonShare:
		return "Common"
	default:
		return "Occasional"
	}
}

func recentEntriesSection(moods []domain.MoodEntry) domain.ReportSection {
	sorted := stats.SortedByTimestamp(moods)
	slices.Reverse(sorted)
	if len(sorted) > recentEntriesLimit {
		sorted = sorted[:recentEntriesLimit]
	}

	table := &domain.Table{
		Title:   "Recent Mood Entries",
		Columns: []string{"Date", "Mood", "Label", "Description"},
	}
	for _, entry := range sorted {
		desc := entry.Description
		if desc == "" {
			desc = domain.DefaultMoodDescription
		}
		table.Rows = append(table.Rows, []string{
			format.DateTime(entry.Timestamp), format.Score(entry.Score()), entry.Label(), desc,
		})
	}

	return domain.ReportSection{
		ID:     domain.SectionRecentEntries,
		Title:  "Recent Entries",
		Blocks: []domain.ReportBlock{{Kind: domain.BlockTable, Table: table}},
	}
}

func taskSection(in DocumentInput) domain.ReportSection {
	t := in.Snapshot.Tasks

	tasks := slices.Clone(in.Records.Tasks)
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	list := &domain.Table{
		Title:   "All Tasks",
		Columns: []string{"Status", "Task", "Category", "Difficulty", "Created", "Completed"},
	}
	for _, task := range tasks {
		glyph, completedAt := glyphPending, "-"
		if task.Completed {
			glyph = glyphCompleted
			if task.CompletedAt != nil {
				completedAt = format.Date(*task.CompletedAt)
			}
		}
		list.Rows = append(list.Rows, []string{
			glyph, task.Title, task.CategoryOrDefault(), task.DifficultyOrDefault(),
			format.Date(task.CreatedAt), completedAt,
		})
	}

	return domain.ReportSection{
		ID:    domain.SectionTasks,
		Title: "Task Progress",
		Blocks: []domain.ReportBlock{
			cards(
				domain.StatCard{Label: "Completed", Value: format.Count(t.Completed)},
				domain.StatCard{Label: "Pending", Value: format.Count(t.Pending)},
				domain.StatCard{Label: "Completion Rate", Value: format.Rate(t.CompletionRate)},
			),
			{Kind: domain.BlockTable, Table: breakdown("Tasks by Category", "Category", t.ByCategory, t.Total)},
			{Kind: domain.BlockTable, Table: breakdown("Tasks by Difficulty", "Difficulty", t.ByDifficulty, t.Total)},
			{Kind: domain.BlockTable, Table: list},
		},
	}
}

func breakdown(title, column string, counts *domain.OrderedCounts, total int) *domain.Table {
	table := &domain.Table{Title: title, Columns: []string{column, "Tasks", "Percentage"}}
	for _, e := range counts.Entries() {
		table.Rows = append(table.Rows, []string{
			e.Key, format.Count(e.Count), format.Rate(format.Percent(e.Count, total)),
		})
	}
	return table
}

func checkInSection(in DocumentInput) domain.ReportSection {
	c := in.Snapshot.CheckIns

	present := make(map[int]bool, len(in.Records.CheckIns))
	for _, checkIn := range in.Records.CheckIns {
		present[stats.DayNumber(checkIn.Date)] = true
	}

	series := &domain.StreakSeries{Title: "Last 30 Days"}
	y, m, d := in.GeneratedAt.Date()
	for i := streakWindowDays - 1; i >= 0; i-- {
		date := time.Date(y, m, d-i, 0, 0, 0, 0, in.GeneratedAt.Location())
		series.Days = append(series.Days, domain.DayPresence{
			Date:    date,
			Label:   format.ShortDate(date),
			Present: present[stats.DayNumber(date)],
		})
	}

	return domain.ReportSection{
		ID:    domain.SectionCheckIns,
		Title: "Check-in Streaks",
		Blocks: []domain.ReportBlock{
			cards(
				domain.StatCard{Label: "Total Check-ins", Value: format.Count(c.Total)},
				domain.StatCard{Label: "Check-in Rate", Value: format.Rate(c.CheckInRate)},
				domain.StatCard{Label: "Current Streak", Value: format.Days(c.CurrentStreak)},
				domain.StatCard{Label: "Longest Streak", Value: format.Days(c.LongestStreak)},
			),
			{Kind: domain.BlockStreak, Streak: series},
		},
	}
}

func insightSection(insights []string) domain.ReportSection {
	return domain.ReportSection{
		ID:     domain.SectionInsights,
		Title:  "Insights",
		Blocks: []domain.ReportBlock{{Kind: domain.BlockInsights, Insights: slices.Clone(insights)}},
	}
}

func cards(c ...domain.StatCard) domain.ReportBlock {
	return domain.ReportBlock{Kind: domain.BlockCards, Cards: c}
}

package adapters

import (
	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/api"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
)

func MapTimePeriodDomainToApi(p *domain.TimePeriod) *api.TimePeriod {
	if p == nil {
		return nil
	}
	return &api.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: p.Duration,
	}
}

func MapTimeRangeDomainToApi(r *domain.TimeRange) *api.TimePeriod {
	if r == nil {
		return nil
	}
	return &api.TimePeriod{Start: r.Start, End: r.End, Duration: r.Days}
}

func MapProfileDomainToApi(p domain.UserProfile) api.UserProfile {
	return api.UserProfile{ID: p.ID, Name: p.Name, Email: p.Email}
}

func MapCountsDomainToApi(c *domain.OrderedCounts) []api.CountEntry {
	res := make([]api.CountEntry, 0, c.Len())
	for _, e := range c.Entries() {
		res = append(res, api.CountEntry{Key: e.Key, Count: e.Count})
	}
	return res
}

func MapStatisticsDomainToApi(st report.Statistics) api.Statistics {
	s := st.Snapshot
	insights := st.Insights
	if insights == nil {
		insights = []string{}
	}
	return api.Statistics{
		User:        MapProfileDomainToApi(st.Profile),
		GeneratedAt: st.GeneratedAt,
		Period:      MapTimeRangeDomainToApi(s.TimeRange),
		Mood: api.MoodStats{
			Total:        s.Mood.Total,
			Average:      s.Mood.Average,
			Highest:      s.Mood.Highest,
			Lowest:       s.Mood.Lowest,
			MostFrequent: s.Mood.MostFrequent,
			Distribution: MapCountsDomainToApi(s.Mood.Distribution),
			Trend:        string(s.Mood.Trend),
		},
		Tasks: api.TaskStats{
			Total:          s.Tasks.Total,
			Completed:      s.Tasks.Completed,
			Pending:        s.Tasks.Pending,
			CompletionRate: s.Tasks.CompletionRate,
			ByCategory:     MapCountsDomainToApi(s.Tasks.ByCategory),
			ByDifficulty:   MapCountsDomainToApi(s.Tasks.ByDifficulty),
		},
		CheckIns: api.CheckInStats{
			Total:         s.CheckIns.Total,
			CurrentStreak: s.CheckIns.CurrentStreak,
			LongestStreak: s.CheckIns.LongestStreak,
			CheckInRate:   s.CheckIns.CheckInRate,
		},
		Insights: insights,
	}
}

func MapReportDomainToApi(r domain.Report) api.Report {
	res := api.Report{
		Title: r.Title,
		Header: api.ReportHeader{
			UserName:    r.Header.UserName,
			UserEmail:   r.Header.UserEmail,
			GeneratedAt: r.Header.GeneratedAt,
			Period:      MapTimePeriodDomainToApi(r.Header.Period),
		},
		Sections: make([]api.ReportSection, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		section := api.ReportSection{
			ID:     string(s.ID),
			Title:  s.Title,
			Blocks: make([]api.ReportBlock, 0, len(s.Blocks)),
		}
		for _, b := range s.Blocks {
			section.Blocks = append(section.Blocks, mapBlockDomainToApi(b))
		}
		res.Sections = append(res.Sections, section)
	}
	return res
}

func mapBlockDomainToApi(b domain.ReportBlock) api.ReportBlock {
	block := api.ReportBlock{Kind: string(b.Kind), Insights: b.Insights}
	for _, c := range b.Cards {
		block.Cards = append(block.Cards, api.StatCard{Label: c.Label, Value: c.Value, Note: c.Note})
	}
	if b.Table != nil {
		block.Table = &api.Table{Title: b.Table.Title, Columns: b.Table.Columns, Rows: b.Table.Rows}
		if block.Table.Rows == nil {
			block.Table.Rows = [][]string{}
		}
	}
	if b.Series != nil {
		series := &api.Series{
			Title:  b.Series.Title,
			Kind:   string(b.Series.Kind),
			Max:    b.Series.Max,
			Points: make([]api.SeriesPoint, 0, len(b.Series.Points)),
		}
		for _, p := range b.Series.Points {
			series.Points = append(series.Points, api.SeriesPoint{Label: p.Label, Value: p.Value})
		}
		block.Series = series
	}
	if b.Streak != nil {
		streak := &api.StreakSeries{Title: b.Streak.Title, Days: make([]api.DayPresence, 0, len(b.Streak.Days))}
		for _, d := range b.Streak.Days {
			streak.Days = append(streak.Days, api.DayPresence{
				Date:    d.Date.Format(format.DayLayout),
				Present: d.Present,
			})
		}
		block.Streak = streak
	}
	return block
}

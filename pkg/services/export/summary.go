package export

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

const summaryTemplate = `WELLNESS REPORT SUMMARY
=======================
Generated: {{.Generated}}
User: {{.User}}
Period: {{.Period}}

MOOD OVERVIEW
-------------
Total Entries: {{.Mood.Total}}
Average Mood: {{.Mood.Average}}
Highest Mood: {{.Mood.Highest}}
Lowest Mood: {{.Mood.Lowest}}
Most Frequent Mood: {{.Mood.MostFrequent}}
Mood Trend: {{.Mood.Trend}}

TASK OVERVIEW
-------------
Total Tasks: {{.Tasks.Total}}
Completed: {{.Tasks.Completed}}
Pending: {{.Tasks.Pending}}
Completion Rate: {{.Tasks.CompletionRate}}

CHECK-IN OVERVIEW
-----------------
Total Check-ins: {{.CheckIns.Total}}
Current Streak: {{.CheckIns.CurrentStreak}}
Longest Streak: {{.CheckIns.LongestStreak}}
Check-in Rate: {{.CheckIns.CheckInRate}}

INSIGHTS
--------
{{range .Insights}}- {{.}}
{{end}}
-----------------------------------------
© {{.Year}} Wellness Atlas. All rights reserved.
`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

// SummaryInput is the data the plain-text summary is rendered from.
type SummaryInput struct {
	Profile     domain.UserProfile
	Snapshot    domain.StatisticsSnapshot
	Insights    []string
	GeneratedAt time.Time
}

type summaryView struct {
	Generated string
	User      string
	Period    string
	Year      int
	Mood      struct{ Total, Average, Highest, Lowest, MostFrequent, Trend string }
	Tasks     struct{ Total, Completed, Pending, CompletionRate string }
	CheckIns  struct{ Total, CurrentStreak, LongestStreak, CheckInRate string }
	Insights  []string
}

// Summary renders the plain-text summary. Values use the same formatting as the
// report document.
func Summary(in SummaryInput) (string, error) {
	s := in.Snapshot

	v := summaryView{
		Generated: format.Date(in.GeneratedAt),
		User:      userLine(in.Profile),
		Period:    periodLine(s.TimeRange),
		Year:      in.GeneratedAt.Year(),
		Insights:  in.Insights,
	}

	v.Mood.Total = format.Count(s.Mood.Total)
	v.Mood.Average = format.AverageScore(s.Mood.Average)
	v.Mood.Highest, v.Mood.Lowest = domain.NotAvailable, domain.NotAvailable
	if s.Mood.Total > 0 {
		v.Mood.Highest, v.Mood.Lowest = format.Score(s.Mood.Highest), format.Score(s.Mood.Lowest)
	}
	v.Mood.MostFrequent = s.Mood.MostFrequent
	v.Mood.Trend = string(s.Mood.Trend)

	v.Tasks.Total = format.Count(s.Tasks.Total)
	v.Tasks.Completed = format.Count(s.Tasks.Completed)
	v.Tasks.Pending = format.Count(s.Tasks.Pending)
	v.Tasks.CompletionRate = format.Rate(s.Tasks.CompletionRate)

	v.CheckIns.Total = format.Count(s.CheckIns.Total)
	v.CheckIns.CurrentStreak = format.Days(s.CheckIns.CurrentStreak)
	v.CheckIns.LongestStreak = format.Days(s.CheckIns.LongestStreak)
	v.CheckIns.CheckInRate = format.Rate(s.CheckIns.CheckInRate)

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return buf.String(), nil
}

func userLine(p domain.UserProfile) string {
	switch {
	case p.Name == "" && p.Email == "":
		return domain.NotAvailable
	case p.Name == "":
		return p.Email
	default:
		return p.String()
	}
}

func periodLine(tr *domain.TimeRange) string {
	if tr == nil {
		return "No mood entries recorded"
	}
	return fmt.Sprintf("%s - %s (%s)", format.Date(tr.Start), format.Date(tr.End), format.Days(tr.Days))
}

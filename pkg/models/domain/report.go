package domain

import "time"

// Report is the semantic report document. It carries already formatted values and
// does not depend on any markup, so every rendering backend reads the same tree.
type Report struct {
	Title    string
	Header   ReportHeader
	Sections []ReportSection
}

type ReportHeader struct {
	UserName    string
	UserEmail   string
	GeneratedAt time.Time
	Period      *TimePeriod // nil when there are no mood entries
}

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

type SectionID string

const (
	SectionOverview      SectionID = "overview"
	SectionMood          SectionID = "mood"
	SectionRecentEntries SectionID = "recent_entries"
	SectionTasks         SectionID = "tasks"
	SectionCheckIns      SectionID = "check_ins"
	SectionInsights      SectionID = "insights"
)

// ReportSection represents a logical section in the report
type ReportSection struct {
	ID     SectionID
	Title  string
	Blocks []ReportBlock
}

type BlockKind string

const (
	BlockCards    BlockKind = "cards"
	BlockTable    BlockKind = "table"
	BlockSeries   BlockKind = "series"
	BlockStreak   BlockKind = "streak"
	BlockInsights BlockKind = "insights"
)

// ReportBlock is a tagged union: exactly the field matching Kind is set.
type ReportBlock struct {
	Kind     BlockKind
	Cards    []StatCard
	Table    *Table
	Series   *Series
	Streak   *StreakSeries
	Insights []string
}

// StatCard is a single headline value
type StatCard struct {
	Label string
	Value string
	Note  string
}

type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

type SeriesKind string

const (
	SeriesLine SeriesKind = "line"
	SeriesBar  SeriesKind = "bar"
)

type Series struct {
	Title  string
	Kind   SeriesKind
	Max    float64 // upper bound of the value axis
	Points []SeriesPoint
}

type SeriesPoint struct {
	Label string
	Value float64
}

// StreakSeries holds one presence flag per calendar day, oldest first.
type StreakSeries struct {
	Title string
	Days  []DayPresence
}

type DayPresence struct {
	Date    time.Time
	Label   string
	Present bool
}

// Section returns the section with the given id.
func (r *Report) Section(id SectionID) (ReportSection, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return ReportSection{}, false
}

package api

import "time"

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type Report struct {
	Title    string          `json:"title"`
	Header   ReportHeader    `json:"header"`
	Sections []ReportSection `json:"sections"`
}

type ReportHeader struct {
	UserName    string      `json:"user_name"`
	UserEmail   string      `json:"user_email,omitempty"`
	GeneratedAt time.Time   `json:"generated_at"`
	Period      *TimePeriod `json:"period,omitempty"`
}

type ReportSection struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Blocks []ReportBlock `json:"blocks"`
}

type ReportBlock struct {
	Kind     string        `json:"kind"`
	Cards    []StatCard    `json:"cards,omitempty"`
	Table    *Table        `json:"table,omitempty"`
	Series   *Series       `json:"series,omitempty"`
	Streak   *StreakSeries `json:"streak,omitempty"`
	Insights []string      `json:"insights,omitempty"`
}

type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note,omitempty"`
}

type Table struct {
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type Series struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind"`
	Max    float64       `json:"max"`
	Points []SeriesPoint `json:"points"`
}

type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type StreakSeries struct {
	Title string        `json:"title"`
	Days  []DayPresence `json:"days"`
}

type DayPresence struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

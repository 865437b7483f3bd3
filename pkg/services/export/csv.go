package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

const (
	RowTypeMood    = "Mood"
	RowTypeTask    = "Task"
	RowTypeCheckIn = "Check-In"

	yes = "Yes"
	no  = "No"
)

// CSVHeader is the fixed column layout existing exports rely on.
var CSVHeader = []string{
	"Type", "Date", "Mood_Score", "Mood_Label", "Description",
	"Task_Title", "Task_Completed", "Task_Category", "Check_In",
}

// field is a single csv cell; text cells are always quoted.
type field struct {
	value string
	text  bool
}

func plain(v string) field { return field{value: v} }
func text(v string) field  { return field{value: v, text: true} }

var empty = field{}

// CSV serializes every record as one row: moods first, then tasks, then check-ins,
// each in input order. Columns that do not apply to a row stay empty.
func CSV(records domain.Records) string {
	var b strings.Builder
	b.WriteString(strings.Join(CSVHeader, ","))
	b.WriteByte('\n')

	for _, m := range records.Moods {
		writeRow(&b,
			plain(RowTypeMood),
			plain(m.Timestamp.Format(time.RFC3339)),
			plain(strconv.Itoa(m.Score())),
			text(m.Label()),
			text(m.Description),
			empty, empty, empty, empty,
		)
	}
	for _, t := range records.Tasks {
		completed := no
		if t.Completed {
			completed = yes
		}
		writeRow(&b,
			plain(RowTypeTask),
			plain(t.CreatedAt.Format(time.RFC3339)),
			empty, empty, empty,
			text(t.Title),
			plain(completed),
			text(t.CategoryOrDefault()),
			empty,
		)
	}
	for _, c := range records.CheckIns {
		writeRow(&b,
			plain(RowTypeCheckIn),
			plain(c.Date.Format(format.DayLayout)),
			empty, empty, empty, empty, empty, empty,
			plain(yes),
		)
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields ...field) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if f.text {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f.value, `"`, `""`))
			b.WriteByte('"')
			continue
		}
		b.WriteString(f.value)
	}
	b.WriteByte('\n')
}

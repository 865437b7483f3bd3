// Package format holds the value formatting shared by every report output, so the
// document, the summary and the renderers print numbers the same way.
package format

import (
	"fmt"
	"math"
	"time"
)

const (
	DateLayout      = "Jan 2, 2006"
	ShortDateLayout = "Jan 02"
	DayLayout       = "2006-01-02"
	DateTimeLayout  = "Jan 2, 2006 3:04 PM"
)

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Score formats a single mood rating, e.g. "8/10".
func Score(n int) string {
	return fmt.Sprintf("%d/10", n)
}

// AverageScore formats a mean mood rating, e.g. "6.5/10".
func AverageScore(v float64) string {
	return fmt.Sprintf("%.1f/10", v)
}

// Rate formats a percentage value, e.g. "50.0%".
func Rate(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Percent returns part/total*100 rounded to one decimal, 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}

func Date(t time.Time) string {
	return t.Format(DateLayout)
}

func DateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func ShortDate(t time.Time) string {
	return t.Format(ShortDateLayout)
}

func Days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func Count(n int) string {
	return fmt.Sprintf("%d", n)
}

package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/models/store"
)

var ErrMissingTimestamp = errors.New("timestamp is missing")

// zone-less layouts are read in the normalizer location
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalizer turns raw export records into domain records. Every produced time
// is expressed in Location.
type Normalizer struct {
	Location *time.Location
}

func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{Location: loc}
}

func (n Normalizer) location() *time.Location {
	if n.Location == nil {
		return time.UTC
	}
	return n.Location
}

// ParseTimestamp accepts a JSON string (RFC 3339 or a zone-less date/time), a
// number of epoch milliseconds, or an object with seconds and nanoseconds.
func (n Normalizer) ParseTimestamp(raw json.RawMessage) (time.Time, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return time.Time{}, ErrMissingTimestamp
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return time.Time{}, fmt.Errorf("decode timestamp string: %w", err)
		}
		return n.parseString(s)
	case '{':
		return n.parseObject(trimmed)
	default:
		return n.parseNumber(trimmed)
	}
}

func (n Normalizer) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingTimestamp
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(n.location()), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, n.location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format %q", s)
}

func (n Normalizer) parseObject(raw []byte) (time.Time, error) {
	var obj struct {
		Seconds           *int64 `json:"seconds"`
		Nanoseconds       int64  `json:"nanoseconds"`
		LegacySeconds     *int64 `json:"_seconds"`
		LegacyNanoseconds int64  `json:"_nanoseconds"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return time.Time{}, fmt.Errorf("decode timestamp object: %w", err)
	}
	switch {
	case obj.Seconds != nil:
		return time.Unix(*obj.Seconds, obj.Nanoseconds).In(n.location()), nil
	case obj.LegacySeconds != nil:
		return time.Unix(*obj.LegacySeconds, obj.LegacyNanoseconds).In(n.location()), nil
	default:
		return time.Time{}, fmt.Errorf("timestamp object has no seconds field")
	}
}

func (n Normalizer) parseNumber(raw []byte) (time.Time, error) {
	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		return time.Time{}, fmt.Errorf("decode epoch milliseconds: %w", err)
	}
	if ms, err := num.Int64(); err == nil {
		return time.UnixMilli(ms).In(n.location()), nil
	}
	f, err := num.Float64()
	if err != nil {
		return time.Time{}, fmt.Errorf("decode epoch milliseconds: %w", err)
	}
	return time.UnixMicro(int64(f * 1000)).In(n.location()), nil
}

// CalendarDay truncates t to midnight of its calendar date in the normalizer location.
func (n Normalizer) CalendarDay(t time.Time) time.Time {
	t = t.In(n.location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, n.location())
}

func (n Normalizer) MoodEntry(raw store.RawMoodEntry) (domain.MoodEntry, error) {
	ts, err := n.ParseTimestamp(raw.Timestamp)
	if err != nil {
		return domain.MoodEntry{}, fmt.Errorf("mood entry %s: %w", raw.ID, err)
	}
	return domain.MoodEntry{
		ID:          raw.ID,
		Mood:        raw.Mood,
		MoodLabel:   raw.MoodLabel,
		Description: raw.Description,
		Timestamp:   ts,
	}, nil
}

func (n Normalizer) Task(raw store.RawTask) (domain.Task, error) {
	created, err := n.ParseTimestamp(raw.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: %w", raw.ID, err)
	}
	task := domain.Task{
		ID:              raw.ID,
		Title:           raw.Title,
		Category:        raw.Category,
		DifficultyLevel: raw.DifficultyLevel,
		Completed:       raw.Completed,
		CreatedAt:       created,
	}
	if raw.Completed {
		completed, err := n.ParseTimestamp(raw.CompletedAt)
		switch {
		case err == nil:
			task.CompletedAt = &completed
		case !errors.Is(err, ErrMissingTimestamp):
			return domain.Task{}, fmt.Errorf("task %s completion: %w", raw.ID, err)
		}
	}
	return task, nil
}

// CheckIn falls back to the timestamp's calendar day when the date is absent,
// and to the date itself when the timestamp is absent.
func (n Normalizer) CheckIn(raw store.RawCheckIn) (domain.CheckIn, error) {
	date, dateErr := n.ParseTimestamp(raw.Date)
	ts, tsErr := n.ParseTimestamp(raw.Timestamp)

	if dateErr != nil && !errors.Is(dateErr, ErrMissingTimestamp) {
		return domain.CheckIn{}, fmt.Errorf("check-in %s date: %w", raw.ID, dateErr)
	}
	if tsErr != nil && !errors.Is(tsErr, ErrMissingTimestamp) {
		return domain.CheckIn{}, fmt.Errorf("check-in %s: %w", raw.ID, tsErr)
	}

	switch {
	case dateErr != nil && tsErr != nil:
		return domain.CheckIn{}, fmt.Errorf("check-in %s: %w", raw.ID, ErrMissingTimestamp)
	case dateErr != nil:
		date = ts
	case tsErr != nil:
		ts = date
	}

	return domain.CheckIn{
		ID:        raw.ID,
		Date:      n.CalendarDay(date),
		Timestamp: ts,
	}, nil
}

// Records normalizes a whole user export and stops at the first malformed record.
func (n Normalizer) Records(export store.UserExport) (domain.Records, error) {
	records := domain.Records{
		Moods:    make([]domain.MoodEntry, 0, len(export.Moods)),
		Tasks:    make([]domain.Task, 0, len(export.Tasks)),
		CheckIns: make([]domain.CheckIn, 0, len(export.CheckIns)),
	}
	for _, raw := range export.Moods {
		m, err := n.MoodEntry(raw)
		if err != nil {
			return domain.Records{}, err
		}
		records.Moods = append(records.Moods, m)
	}
	for _, raw := range export.Tasks {
		t, err := n.Task(raw)
		if err != nil {
			return domain.Records{}, err
		}
		records.Tasks = append(records.Tasks, t)
	}
	for _, raw := range export.CheckIns {
		c, err := n.CheckIn(raw)
		if err != nil {
			return domain.Records{}, err
		}
		records.CheckIns = append(records.CheckIns, c)
	}
	return records, nil
}

// LocalMood expresses a stored mood entry in the normalizer location.
func (n Normalizer) LocalMood(m domain.MoodEntry) domain.MoodEntry {
	m.Timestamp = m.Timestamp.In(n.location())
	return m
}

func (n Normalizer) LocalTask(t domain.Task) domain.Task {
	loc := n.location()
	t.CreatedAt = t.CreatedAt.In(loc)
	if t.CompletedAt != nil {
		completed := t.CompletedAt.In(loc)
		t.CompletedAt = &completed
	}
	return t
}

// LocalCheckIn moves the check-in date to midnight of the same calendar date in the
// normalizer location.
func (n Normalizer) LocalCheckIn(c domain.CheckIn) domain.CheckIn {
	loc := n.location()
	y, m, d := c.Date.Date()
	c.Date = time.Date(y, m, d, 0, 0, 0, 0, loc)
	c.Timestamp = c.Timestamp.In(loc)
	return c
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedCounts_PreservesFirstOccurrenceOrder(t *testing.T) {
	c := NewOrderedCounts()
	for _, k := range []string{"Sad", "Happy", "Sad", "Calm", "Happy", "Sad"} {
		c.Inc(k)
	}

	assert.Equal(t, []string{"Sad", "Happy", "Calm"}, c.Keys())
	assert.Equal(t, 3, c.Get("Sad"))
	assert.Equal(t, 2, c.Get("Happy"))
	assert.Equal(t, 1, c.Get("Calm"))
	assert.Equal(t, 0, c.Get("Angry"))
	assert.Equal(t, 6, c.Total())
	assert.Equal(t, 3, c.Len())
}

func TestOrderedCounts_ZeroValueAndNil(t *testing.T) {
	var zero OrderedCounts
	zero.Inc("a")
	assert.Equal(t, 1, zero.Get("a"))

	var nilCounts *OrderedCounts
	assert.Equal(t, 0, nilCounts.Len())
	assert.Equal(t, 0, nilCounts.Total())
	assert.Nil(t, nilCounts.Keys())
}

func TestOrderedCounts_KeysIsACopy(t *testing.T) {
	c := NewOrderedCounts()
	c.Inc("a")
	keys := c.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, c.Keys())
}

func TestMoodEntry_ScoreIsClamped(t *testing.T) {
	assert.Equal(t, 0, MoodEntry{Mood: -3}.Score())
	assert.Equal(t, 10, MoodEntry{Mood: 42}.Score())
	assert.Equal(t, 7, MoodEntry{Mood: 7}.Score())
}

func TestRecordDefaults(t *testing.T) {
	assert.Equal(t, "Unknown", MoodEntry{}.Label())
	assert.Equal(t, "Uncategorized", Task{}.CategoryOrDefault())
	assert.Equal(t, "Unknown", Task{}.DifficultyOrDefault())
	assert.Equal(t, "Work", Task{Category: "Work"}.CategoryOrDefault())
}

package file

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/services/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFixture(t *testing.T) *Source {
	src, err := Load(filepath.Join("testdata", "export.json"), adapters.NewNormalizer(time.UTC))
	require.NoError(t, err)
	return src
}

func TestSource_NormalizesMixedTimestamps(t *testing.T) {
	src := setupFixture(t)
	ctx := context.Background()

	moods, err := src.GetMoodEntries(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, moods, 3)
	assert.Equal(t, time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC), moods[0].Timestamp)
	assert.Equal(t, time.Date(2026, 10, 13, 8, 0, 0, 0, time.UTC), moods[1].Timestamp)
	assert.Equal(t, time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC), moods[2].Timestamp)

	tasks, err := src.GetTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.NotNil(t, tasks[0].CompletedAt)
	assert.Equal(t, time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC), *tasks[0].CompletedAt)
	assert.Equal(t, time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), tasks[1].CreatedAt)

	checkIns, err := src.GetCheckIns(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, checkIns, 3)
	assert.Equal(t, time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC), checkIns[1].Date)

	records, err := src.Records(ctx, "alice")
	require.NoError(t, err)
	snapshot := stats.Compute(records, time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, snapshot.CheckIns.CurrentStreak)
	assert.Equal(t, 7.7, snapshot.Mood.Average)
}

func TestSource_UsersAndUnknownUser(t *testing.T) {
	src := setupFixture(t)
	ctx := context.Background()

	users, err := src.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)

	moods, err := src.GetMoodEntries(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestSource_MalformedRecord(t *testing.T) {
	src := setupFixture(t)

	_, err := src.GetMoodEntries(context.Background(), "bob")
	assert.ErrorContains(t, err, "mood entry b1")

	tasks, err := src.GetTasks(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSource_CanceledContext(t *testing.T) {
	src := setupFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.GetCheckIns(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSource_InvalidJSON(t *testing.T) {
	_, err := NewSource(strings.NewReader("{"), adapters.NewNormalizer(nil))
	assert.ErrorContains(t, err, "decode export")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), adapters.NewNormalizer(nil))
	assert.Error(t, err)
}

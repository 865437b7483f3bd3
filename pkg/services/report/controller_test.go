package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecordSource struct{ mock.Mock }

func (m *mockRecordSource) GetMoodEntries(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoodEntry), args.Error(1)
}

func (m *mockRecordSource) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockRecordSource) GetCheckIns(ctx context.Context, userID string) ([]domain.CheckIn, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckIn), args.Error(1)
}

type mockProfileSource struct{ mock.Mock }

func (m *mockProfileSource) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

func TestController_Generate(t *testing.T) {
	ctx := testContext(t)
	src := new(mockRecordSource)
	profiles := new(mockProfileSource)

	alice := domain.UserProfile{ID: "alice", Name: "Alice", Email: "alice@example.com"}
	profiles.On("GetProfile", mock.Anything, "alice").Return(alice, nil)
	src.On("GetMoodEntries", mock.Anything, "alice").Return([]domain.MoodEntry{
		{ID: "m1", Mood: 8, MoodLabel: "Good", Timestamp: day(1)},
		{ID: "m2", Mood: 9, MoodLabel: "Great", Timestamp: day(0)},
	}, nil)
	src.On("GetTasks", mock.Anything, "alice").Return([]domain.Task{{Title: "a", Completed: true}, {Title: "b"}}, nil)
	src.On("GetCheckIns", mock.Anything, "alice").Return([]domain.CheckIn{{Date: day(0)}, {Date: day(1)}}, nil)

	ctrl := NewController(src, profiles)
	artifacts, err := ctrl.Generate(ctx, Request{UserID: "alice", Now: generatedAt})
	require.NoError(t, err)

	assert.Equal(t, alice, artifacts.Profile)
	assert.Equal(t, domain.TrendImproving, artifacts.Snapshot.Mood.Trend)
	assert.Equal(t, 50.0, artifacts.Snapshot.Tasks.CompletionRate)
	assert.Equal(t, 2, artifacts.Snapshot.CheckIns.CurrentStreak)
	assert.Len(t, artifacts.Insights, 4)
	assert.Equal(t, "Alice", artifacts.Document.Header.UserName)
	assert.True(t, strings.HasPrefix(artifacts.CSV, "Type,Date,"))
	assert.Equal(t, 7, strings.Count(artifacts.CSV, "\n"))
	assert.Contains(t, artifacts.Summary, "User: Alice (alice@example.com)")
	assert.Equal(t, generatedAt, artifacts.GeneratedAt)

	src.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestController_UsesClockAndLocation(t *testing.T) {
	src := new(mockRecordSource)
	src.On("GetMoodEntries", mock.Anything, "bob").Return([]domain.MoodEntry{}, nil)
	src.On("GetTasks", mock.Anything, "bob").Return([]domain.Task{}, nil)
	src.On("GetCheckIns", mock.Anything, "bob").Return([]domain.CheckIn{
		{Date: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
	}, nil)

	tokyo := time.FixedZone("JST", 9*3600)
	clock := func() time.Time { return time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC) }
	ctrl := NewController(src, nil, WithClock(clock), WithLocation(tokyo))

	st, err := ctrl.Statistics(testContext(t), Request{UserID: "bob"})
	require.NoError(t, err)

	// 20:00 UTC is already Oct 15 in Tokyo, so the check-in counts as today.
	assert.Equal(t, 1, st.Snapshot.CheckIns.CurrentStreak)
	assert.Equal(t, tokyo, st.GeneratedAt.Location())
	assert.Equal(t, domain.UserProfile{ID: "bob", Name: "bob"}, st.Profile)
}

func TestController_Errors(t *testing.T) {
	fetchErr := errors.New("storage unavailable")

	t.Run("missing user", func(t *testing.T) {
		ctrl := NewController(new(mockRecordSource), nil)
		_, err := ctrl.Generate(testContext(t), Request{})
		assert.ErrorIs(t, err, ErrUserRequired)
	})

	t.Run("profile lookup fails", func(t *testing.T) {
		profiles := new(mockProfileSource)
		profiles.On("GetProfile", mock.Anything, "ghost").Return(domain.UserProfile{}, fetchErr)
		src := new(mockRecordSource)

		_, err := NewController(src, profiles).Generate(testContext(t), Request{UserID: "ghost"})
		assert.ErrorIs(t, err, fetchErr)
		src.AssertNotCalled(t, "GetMoodEntries", mock.Anything, mock.Anything)
	})

	t.Run("fetch failure is fatal and not retried", func(t *testing.T) {
		src := new(mockRecordSource)
		src.On("GetMoodEntries", mock.Anything, "alice").Return([]domain.MoodEntry{}, nil).Once()
		src.On("GetTasks", mock.Anything, "alice").Return(nil, fetchErr).Once()

		_, err := NewController(src, nil).Generate(testContext(t), Request{UserID: "alice", Now: generatedAt})
		assert.ErrorIs(t, err, fetchErr)
		assert.Contains(t, err.Error(), "failed to fetch tasks")
		src.AssertNumberOfCalls(t, "GetTasks", 1)
		src.AssertNotCalled(t, "GetCheckIns", mock.Anything, mock.Anything)
	})
}

func TestController_GenerateIsReproducible(t *testing.T) {
	src := new(mockRecordSource)
	src.On("GetMoodEntries", mock.Anything, "alice").Return(manyMoods(16), nil)
	src.On("GetTasks", mock.Anything, "alice").Return([]domain.Task{{Title: `say "hello"`, CreatedAt: day(2)}}, nil)
	src.On("GetCheckIns", mock.Anything, "alice").Return([]domain.CheckIn{{Date: day(3)}}, nil)
	ctrl := NewController(src, nil)

	first, err := ctrl.Generate(testContext(t), Request{UserID: "alice", Now: generatedAt})
	require.NoError(t, err)
	second, err := ctrl.Generate(testContext(t), Request{UserID: "alice", Now: generatedAt})
	require.NoError(t, err)

	assert.Equal(t, first.CSV, second.CSV)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Document, second.Document)
}

func TestParseDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)

	got, err := ParseDay("2026-10-14", tokyo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, tokyo), got)

	got, err = ParseDay("2026-10-14", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())

	_, err = ParseDay("14/10/2026", nil)
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/services/export"
	"github.com/de-tools/wellness-atlas/pkg/services/insights"
	"github.com/de-tools/wellness-atlas/pkg/services/stats"
	"github.com/rs/zerolog"
)

var ErrUserRequired = errors.New("user id is required")

// RecordSource fetches the already materialized collections of one user.
type RecordSource interface {
	GetMoodEntries(ctx context.Context, userID string) ([]domain.MoodEntry, error)
	GetTasks(ctx context.Context, userID string) ([]domain.Task, error)
	GetCheckIns(ctx context.Context, userID string) ([]domain.CheckIn, error)
}

type ProfileSource interface {
	GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
}

// Controller defines the interface for report generation
type Controller interface {
	// Generate fetches the user's records and produces every report artifact
	Generate(ctx context.Context, req Request) (*Artifacts, error)
	// Statistics fetches the user's records and returns only the snapshot and insights
	Statistics(ctx context.Context, req Request) (*Statistics, error)
}

type Request struct {
	UserID string
	// Now pins the reference instant. The controller clock is used when zero.
	Now time.Time
}

type Statistics struct {
	Profile     domain.UserProfile
	Snapshot    domain.StatisticsSnapshot
	Insights    []string
	GeneratedAt time.Time
}

type Artifacts struct {
	Statistics
	Records  domain.Records
	Document domain.Report
	CSV      string
	Summary  string
}

type Option func(*DefaultController)

// WithLocation sets the location calendar days are read in.
func WithLocation(loc *time.Location) Option {
	return func(c *DefaultController) {
		if loc != nil {
			c.location = loc
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *DefaultController) {
		if clock != nil {
			c.clock = clock
		}
	}
}

type DefaultController struct {
	records  RecordSource
	profiles ProfileSource
	location *time.Location
	clock    func() time.Time
}

func NewController(records RecordSource, profiles ProfileSource, opts ...Option) *DefaultController {
	ctrl := &DefaultController{
		records:  records,
		profiles: profiles,
		location: time.UTC,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(ctrl)
	}
	return ctrl
}

func (ctrl *DefaultController) Statistics(ctx context.Context, req Request) (*Statistics, error) {
	st, _, err := ctrl.compute(ctx, req)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (ctrl *DefaultController) Generate(ctx context.Context, req Request) (*Artifacts, error) {
	st, records, err := ctrl.compute(ctx, req)
	if err != nil {
		return nil, err
	}

	summary, err := export.Summary(export.SummaryInput{
		Profile:     st.Profile,
		Snapshot:    st.Snapshot,
		Insights:    st.Insights,
		GeneratedAt: st.GeneratedAt,
	})
	if err != nil {
		return nil, err
	}

	return &Artifacts{
		Statistics: *st,
		Records:    records,
		Document: BuildDocument(DocumentInput{
			Profile:     st.Profile,
			Records:     records,
			Snapshot:    st.Snapshot,
			Insights:    st.Insights,
			GeneratedAt: st.GeneratedAt,
		}),
		CSV:     export.CSV(records),
		Summary: summary,
	}, nil
}

func (ctrl *DefaultController) compute(ctx context.Context, req Request) (*Statistics, domain.Records, error) {
	if req.UserID == "" {
		return nil, domain.Records{}, ErrUserRequired
	}
	logger := zerolog.Ctx(ctx).With().Str("user", req.UserID).Logger()

	profile, err := ctrl.profile(ctx, req.UserID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve user profile")
		return nil, domain.Records{}, err
	}

	records, err := ctrl.fetch(ctx, req.UserID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch records")
		return nil, domain.Records{}, err
	}
	logger.Debug().
		Int("moods", len(records.Moods)).
		Int("tasks", len(records.Tasks)).
		Int("check_ins", len(records.CheckIns)).
		Msg("records fetched")

	now := req.Now
	if now.IsZero() {
		now = ctrl.clock()
	}
	now = now.In(ctrl.location)

	snapshot := stats.Compute(records, now)
	return &Statistics{
		Profile:     profile,
		Snapshot:    snapshot,
		Insights:    insights.Generate(snapshot),
		GeneratedAt: now,
	}, records, nil
}

func (ctrl *DefaultController) profile(ctx context.Context, userID string) (domain.UserProfile, error) {
	if ctrl.profiles == nil {
		return domain.UserProfile{ID: userID, Name: userID}, nil
	}
	profile, err := ctrl.profiles.GetProfile(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}
	return profile, nil
}

func (ctrl *DefaultController) fetch(ctx context.Context, userID string) (domain.Records, error) {
	moods, err := ctrl.records.GetMoodEntries(ctx, userID)
	if err != nil {
		return domain.Records{}, fmt.Errorf("failed to fetch mood entries: %w", err)
	}
	tasks, err := ctrl.records.GetTasks(ctx, userID)
	if err != nil {
		return domain.Records{}, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	checkIns, err := ctrl.records.GetCheckIns(ctx, userID)
	if err != nil {
		return domain.Records{}, fmt.Errorf("failed to fetch check-ins: %w", err)
	}
	return domain.Records{Moods: moods, Tasks: tasks, CheckIns: checkIns}, nil
}

// ParseDay reads a YYYY-MM-DD reference day as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(format.DayLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected format YYYY-MM-DD", value)
	}
	return day, nil
}

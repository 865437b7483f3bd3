package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/models/store"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb"
	"github.com/google/uuid"
)

const (
	insertMoodQuery = `
		INSERT INTO mood_entries (id, user_id, mood, mood_label, description, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	insertTaskQuery = `
		INSERT INTO tasks (id, user_id, title, category, difficulty_level, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	// a second check-in for the same day is ignored
	insertCheckInQuery = `
		INSERT OR IGNORE INTO check_ins (id, user_id, check_in_date, recorded_at)
		VALUES (?, ?, ?, ?)`

	listMoodsQuery = `
		SELECT id, mood, mood_label, description, recorded_at
		FROM mood_entries
		WHERE user_id = ?
		ORDER BY recorded_at, id`

	listTasksQuery = `
		SELECT id, title, category, difficulty_level, completed, created_at, completed_at
		FROM tasks
		WHERE user_id = ?
		ORDER BY created_at, id`

	listCheckInsQuery = `
		SELECT id, check_in_date, recorded_at
		FROM check_ins
		WHERE user_id = ?
		ORDER BY check_in_date DESC`

	listUsersQuery = `
		SELECT user_id FROM mood_entries
		UNION SELECT user_id FROM tasks
		UNION SELECT user_id FROM check_ins
		ORDER BY user_id`
)

// Store persists one row per record, keyed by user. Add binds to the transaction
// carried by ctx when there is one.
type Store interface {
	AddMoodEntries(ctx context.Context, userID string, records []store.MoodRecord) error
	AddTasks(ctx context.Context, userID string, records []store.TaskRecord) error
	AddCheckIns(ctx context.Context, userID string, records []store.CheckInRecord) error
	ListMoodEntries(ctx context.Context, userID string) ([]store.MoodRecord, error)
	ListTasks(ctx context.Context, userID string) ([]store.TaskRecord, error)
	ListCheckIns(ctx context.Context, userID string) ([]store.CheckInRecord, error)
	ListUsers(ctx context.Context) ([]string, error)
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

func (s *recordStore) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	var (
		stmt *sql.Stmt
		err  error
	)
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		stmt, err = tx.PrepareContext(ctx, query)
	} else {
		stmt, err = s.db.PrepareContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("prepare statement: %w", err)
	}
	return stmt, nil
}

func recordID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// nullable unwraps sql.Null values into plain driver args, nil when invalid.
func nullable(s sql.NullString) any {
	if !s.Valid {
		return nil
	}
	return s.String
}

func nullableTime(t sql.NullTime) any {
	if !t.Valid {
		return nil
	}
	return t.Time
}

func (s *recordStore) AddMoodEntries(ctx context.Context, userID string, records []store.MoodRecord) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := s.prepare(ctx, insertMoodQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			recordID(r.ID),
			userID,
			r.Mood,
			nullable(r.MoodLabel),
			nullable(r.Description),
			r.RecordedAt,
		)
		if err != nil {
			return fmt.Errorf("insert mood entry: %w", err)
		}
	}
	return nil
}

func (s *recordStore) AddTasks(ctx context.Context, userID string, records []store.TaskRecord) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := s.prepare(ctx, insertTaskQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			recordID(r.ID),
			userID,
			r.Title,
			nullable(r.Category),
			nullable(r.DifficultyLevel),
			r.Completed,
			r.CreatedAt,
			nullableTime(r.CompletedAt),
		)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
	}
	return nil
}

func (s *recordStore) AddCheckIns(ctx context.Context, userID string, records []store.CheckInRecord) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := s.prepare(ctx, insertCheckInQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			recordID(r.ID),
			userID,
			r.CheckInDate,
			r.RecordedAt,
		)
		if err != nil {
			return fmt.Errorf("insert check-in: %w", err)
		}
	}
	return nil
}

func (s *recordStore) ListMoodEntries(ctx context.Context, userID string) ([]store.MoodRecord, error) {
	rows, err := s.db.QueryContext(ctx, listMoodsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query mood entries: %w", err)
	}
	defer rows.Close()

	records := make([]store.MoodRecord, 0)
	for rows.Next() {
		var r store.MoodRecord
		if err := rows.Scan(&r.ID, &r.Mood, &r.MoodLabel, &r.Description, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *recordStore) ListTasks(ctx context.Context, userID string) ([]store.TaskRecord, error) {
	rows, err := s.db.QueryContext(ctx, listTasksQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	records := make([]store.TaskRecord, 0)
	for rows.Next() {
		var r store.TaskRecord
		err := rows.Scan(&r.ID, &r.Title, &r.Category, &r.DifficultyLevel, &r.Completed, &r.CreatedAt, &r.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *recordStore) ListCheckIns(ctx context.Context, userID string) ([]store.CheckInRecord, error) {
	rows, err := s.db.QueryContext(ctx, listCheckInsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query check-ins: %w", err)
	}
	defer rows.Close()

	records := make([]store.CheckInRecord, 0)
	for rows.Next() {
		var r store.CheckInRecord
		if err := rows.Scan(&r.ID, &r.CheckInDate, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *recordStore) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]string, 0)
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/pkg/common"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS meal_records (
	seq               INTEGER PRIMARY KEY AUTOINCREMENT,
	id                TEXT NOT NULL UNIQUE,
	date              TEXT NOT NULL,
	meal_type         TEXT NOT NULL,
	menu_text         TEXT NOT NULL,
	canonical_menu_id TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_meal_records_date ON meal_records (date);
CREATE TABLE IF NOT EXISTS preferences (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS feedback (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	id        TEXT NOT NULL UNIQUE,
	menu_id   TEXT NOT NULL,
	action    TEXT NOT NULL,
	timestamp TEXT NOT NULL
);`

// SQLiteStore SQLite 파일 저장소
type SQLiteStore struct {
	db  *sql.DB
	now Clock
}

// NewSQLiteStore path에 데이터베이스를 열고 스키마를 만든다. ":memory:"도 허용
func NewSQLiteStore(ctx context.Context, path string, now Clock) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// 단일 연결: 쓰기 직렬화, :memory: 공유
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, now: now}, nil
}

func (s *SQLiteStore) ListRecentMealRecords(ctx context.Context, now time.Time) ([]menu.MealRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, meal_type, menu_text, canonical_menu_id
		 FROM meal_records WHERE date >= ? ORDER BY date DESC, seq ASC`,
		cutoffDate(now))
	if err != nil {
		return nil, fmt.Errorf("failed to query meal records: %w", err)
	}
	defer rows.Close()

	out := []menu.MealRecord{}
	for rows.Next() {
		var r menu.MealRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.MealType, &r.MenuText, &r.CanonicalMenuID); err != nil {
			return nil, fmt.Errorf("failed to scan meal record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meal records: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) GetMealRecord(ctx context.Context, id string) (menu.MealRecord, bool, error) {
	var r menu.MealRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, date, meal_type, menu_text, canonical_menu_id FROM meal_records WHERE id = ?`, id).
		Scan(&r.ID, &r.Date, &r.MealType, &r.MenuText, &r.CanonicalMenuID)
	if errors.Is(err, sql.ErrNoRows) {
		return menu.MealRecord{}, false, nil
	}
	if err != nil {
		return menu.MealRecord{}, false, fmt.Errorf("failed to get meal record: %w", err)
	}
	return r, true, nil
}

func (s *SQLiteStore) CreateMealRecord(ctx context.Context, record menu.MealRecord) (menu.MealRecord, error) {
	record.ID = common.GenerateUUID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO meal_records (id, date, meal_type, menu_text, canonical_menu_id) VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.Date, string(record.MealType), record.MenuText, record.CanonicalMenuID)
	if err != nil {
		return menu.MealRecord{}, fmt.Errorf("failed to insert meal record: %w", err)
	}
	return record, nil
}

func (s *SQLiteStore) DeleteMealRecord(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM meal_records WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete meal record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete meal record: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) ClearMealRecords(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM meal_records`); err != nil {
		return fmt.Errorf("failed to clear meal records: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetPreferences(ctx context.Context) (menu.UserPreferences, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM preferences WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return menu.DefaultPreferences(), nil
	}
	if err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs menu.UserPreferences
	if err := common.ParseJSON(data, &prefs); err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs.Normalize(), nil
}

func (s *SQLiteStore) UpdatePreferences(ctx context.Context, prefs menu.UserPreferences) (menu.UserPreferences, error) {
	prefs = prefs.Normalize()
	data, err := common.ToJSON(prefs)
	if err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to encode preferences: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO preferences (id, data) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data`, data)
	if err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs.Clone(), nil
}

func (s *SQLiteStore) ListFeedback(ctx context.Context) ([]menu.Feedback, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, menu_id, action, timestamp FROM feedback ORDER BY timestamp DESC, seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	out := []menu.Feedback{}
	for rows.Next() {
		var (
			fb menu.Feedback
			ts string
		)
		if err := rows.Scan(&fb.ID, &fb.MenuID, &fb.Action, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		if fb.Timestamp, err = parseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("invalid feedback timestamp %q: %w", ts, err)
		}
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) CreateFeedback(ctx context.Context, menuID string, action menu.FeedbackAction) (menu.Feedback, error) {
	fb := menu.Feedback{
		ID:        common.GenerateUUID(),
		MenuID:    menuID,
		Action:    action,
		Timestamp: s.now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, menu_id, action, timestamp) VALUES (?, ?, ?, ?)`,
		fb.ID, fb.MenuID, string(fb.Action), formatTimestamp(fb.Timestamp))
	if err != nil {
		return menu.Feedback{}, fmt.Errorf("failed to insert feedback: %w", err)
	}
	return fb, nil
}

func (s *SQLiteStore) ClearFeedback(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM feedback`); err != nil {
		return fmt.Errorf("failed to clear feedback: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

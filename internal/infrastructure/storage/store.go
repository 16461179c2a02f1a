// Package storage 식사 기록, 선호도, 피드백 저장소
package storage

import (
	"context"
	"fmt"
	"time"

	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/infrastructure/config"
)

// RecentWindow 최근 기록으로 보는 기간
const RecentWindow = 7 * 24 * time.Hour

// 정렬 가능한 고정 폭 UTC 타임스탬프
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Store 단일 사용자 저장소. 조회 결과는 모두 사본이다
type Store interface {
	// ListRecentMealRecords now 기준 7일 이내 기록, 최신 날짜 우선 (같은 날짜는 입력 순서)
	ListRecentMealRecords(ctx context.Context, now time.Time) ([]menu.MealRecord, error)
	GetMealRecord(ctx context.Context, id string) (menu.MealRecord, bool, error)
	// CreateMealRecord id를 부여해 저장한다
	CreateMealRecord(ctx context.Context, record menu.MealRecord) (menu.MealRecord, error)
	DeleteMealRecord(ctx context.Context, id string) (bool, error)
	ClearMealRecords(ctx context.Context) error

	// GetPreferences 저장된 값이 없으면 기본값
	GetPreferences(ctx context.Context) (menu.UserPreferences, error)
	UpdatePreferences(ctx context.Context, prefs menu.UserPreferences) (menu.UserPreferences, error)

	// ListFeedback 최신순
	ListFeedback(ctx context.Context) ([]menu.Feedback, error)
	// CreateFeedback id와 시각을 부여해 저장한다
	CreateFeedback(ctx context.Context, menuID string, action menu.FeedbackAction) (menu.Feedback, error)
	ClearFeedback(ctx context.Context) error

	Ping(ctx context.Context) error
	Close() error
}

// Clock 현재 시각
type Clock func() time.Time

// New 설정된 드라이버로 저장소를 만든다
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		return NewMemoryStore(time.Now), nil
	case config.StorageSQLite:
		return NewSQLiteStore(ctx, cfg.SQLitePath, time.Now)
	case config.StorageRedis:
		return NewRedisStore(ctx, cfg.Redis, time.Now)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// cutoffDate 최근 기록 하한 날짜 (UTC, 포함)
func cutoffDate(now time.Time) string {
	return now.UTC().Add(-RecentWindow).Format(menu.DateLayout)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

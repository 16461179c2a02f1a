package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/pkg/common"
)

// MemoryStore 프로세스 메모리 저장소
type MemoryStore struct {
	mu       sync.RWMutex
	now      Clock
	records  []menu.MealRecord
	prefs    *menu.UserPreferences
	feedback []menu.Feedback
}

// NewMemoryStore 빈 메모리 저장소
func NewMemoryStore(now Clock) *MemoryStore {
	return &MemoryStore{now: now}
}

func (s *MemoryStore) ListRecentMealRecords(_ context.Context, now time.Time) ([]menu.MealRecord, error) {
	cutoff := cutoffDate(now)

	s.mu.RLock()
	out := make([]menu.MealRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.Date >= cutoff {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *MemoryStore) GetMealRecord(_ context.Context, id string) (menu.MealRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return menu.MealRecord{}, false, nil
}

func (s *MemoryStore) CreateMealRecord(_ context.Context, record menu.MealRecord) (menu.MealRecord, error) {
	record.ID = common.GenerateUUID()

	s.mu.Lock()
	s.records = append(s.records, record)
	s.mu.Unlock()
	return record, nil
}

func (s *MemoryStore) DeleteMealRecord(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ClearMealRecords(_ context.Context) error {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetPreferences(_ context.Context) (menu.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.prefs == nil {
		return menu.DefaultPreferences(), nil
	}
	return s.prefs.Clone(), nil
}

func (s *MemoryStore) UpdatePreferences(_ context.Context, prefs menu.UserPreferences) (menu.UserPreferences, error) {
	stored := prefs.Clone()

	s.mu.Lock()
	s.prefs = &stored
	s.mu.Unlock()
	return stored.Clone(), nil
}

func (s *MemoryStore) ListFeedback(_ context.Context) ([]menu.Feedback, error) {
	s.mu.RLock()
	out := append([]menu.Feedback(nil), s.feedback...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryStore) CreateFeedback(_ context.Context, menuID string, action menu.FeedbackAction) (menu.Feedback, error) {
	fb := menu.Feedback{
		ID:        common.GenerateUUID(),
		MenuID:    menuID,
		Action:    action,
		Timestamp: s.now().UTC(),
	}

	s.mu.Lock()
	s.feedback = append(s.feedback, fb)
	s.mu.Unlock()
	return fb, nil
}

func (s *MemoryStore) ClearFeedback(_ context.Context) error {
	s.mu.Lock()
	s.feedback = nil
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

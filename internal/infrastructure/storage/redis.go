package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/infrastructure/config"
	"menu-recommendation/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore Redis 저장소
//
// 키 구성 (prefix 기준):
//
//	records      HASH  id -> 기록 JSON
//	record_ids   LIST  입력 순서의 id
//	preferences  STRING 선호도 JSON
//	feedback     LIST  피드백 JSON
type RedisStore struct {
	client *redis.Client
	prefix string
	now    Clock
}

// NewRedisStore 연결 후 PING으로 확인한다
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, now Clock) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 연결 확인
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, prefix: cfg.KeyPrefix, now: now}, nil
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

func (s *RedisStore) ListRecentMealRecords(ctx context.Context, now time.Time) ([]menu.MealRecord, error) {
	ids, err := s.client.LRange(ctx, s.key("record_ids"), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list meal records: %w", err)
	}
	out := []menu.MealRecord{}
	if len(ids) == 0 {
		return out, nil
	}

	values, err := s.client.HMGet(ctx, s.key("records"), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get meal records: %w", err)
	}

	cutoff := cutoffDate(now)
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var r menu.MealRecord
		if err := common.ParseJSON(raw, &r); err != nil {
			return nil, fmt.Errorf("failed to decode meal record: %w", err)
		}
		if r.Date >= cutoff {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *RedisStore) GetMealRecord(ctx context.Context, id string) (menu.MealRecord, bool, error) {
	raw, err := s.client.HGet(ctx, s.key("records"), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return menu.MealRecord{}, false, nil
	}
	if err != nil {
		return menu.MealRecord{}, false, fmt.Errorf("failed to get meal record: %w", err)
	}

	var r menu.MealRecord
	if err := common.ParseJSONBytes(raw, &r); err != nil {
		return menu.MealRecord{}, false, fmt.Errorf("failed to decode meal record: %w", err)
	}
	return r, true, nil
}

func (s *RedisStore) CreateMealRecord(ctx context.Context, record menu.MealRecord) (menu.MealRecord, error) {
	record.ID = common.GenerateUUID()
	data, err := common.ToJSON(record)
	if err != nil {
		return menu.MealRecord{}, fmt.Errorf("failed to encode meal record: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, s.key("records"), record.ID, data)
		p.RPush(ctx, s.key("record_ids"), record.ID)
		return nil
	})
	if err != nil {
		return menu.MealRecord{}, fmt.Errorf("failed to save meal record: %w", err)
	}
	return record, nil
}

func (s *RedisStore) DeleteMealRecord(ctx context.Context, id string) (bool, error) {
	var deleted *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		deleted = p.HDel(ctx, s.key("records"), id)
		p.LRem(ctx, s.key("record_ids"), 0, id)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete meal record: %w", err)
	}
	return deleted.Val() > 0, nil
}

func (s *RedisStore) ClearMealRecords(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key("records"), s.key("record_ids")).Err(); err != nil {
		return fmt.Errorf("failed to clear meal records: %w", err)
	}
	return nil
}

func (s *RedisStore) GetPreferences(ctx context.Context) (menu.UserPreferences, error) {
	raw, err := s.client.Get(ctx, s.key("preferences")).Bytes()
	if errors.Is(err, redis.Nil) {
		return menu.DefaultPreferences(), nil
	}
	if err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs menu.UserPreferences
	if err := common.ParseJSONBytes(raw, &prefs); err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs.Normalize(), nil
}

func (s *RedisStore) UpdatePreferences(ctx context.Context, prefs menu.UserPreferences) (menu.UserPreferences, error) {
	prefs = prefs.Normalize()
	data, err := common.ToJSON(prefs)
	if err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.client.Set(ctx, s.key("preferences"), data, 0).Err(); err != nil {
		return menu.UserPreferences{}, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs.Clone(), nil
}

func (s *RedisStore) ListFeedback(ctx context.Context) ([]menu.Feedback, error) {
	values, err := s.client.LRange(ctx, s.key("feedback"), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	out := make([]menu.Feedback, 0, len(values))
	for _, raw := range values {
		var fb menu.Feedback
		if err := common.ParseJSON(raw, &fb); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		out = append(out, fb)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *RedisStore) CreateFeedback(ctx context.Context, menuID string, action menu.FeedbackAction) (menu.Feedback, error) {
	fb := menu.Feedback{
		ID:        common.GenerateUUID(),
		MenuID:    menuID,
		Action:    action,
		Timestamp: s.now().UTC(),
	}
	data, err := common.ToJSON(fb)
	if err != nil {
		return menu.Feedback{}, fmt.Errorf("failed to encode feedback: %w", err)
	}
	if err := s.client.RPush(ctx, s.key("feedback"), data).Err(); err != nil {
		return menu.Feedback{}, fmt.Errorf("failed to save feedback: %w", err)
	}
	return fb, nil
}

func (s *RedisStore) ClearFeedback(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key("feedback")).Err(); err != nil {
		return fmt.Errorf("failed to clear feedback: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

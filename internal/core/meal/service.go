// Package meal 식사 기록, 선호도, 피드백을 매칭과 추천 엔진에 연결하는 서비스
package meal

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"menu-recommendation/internal/core/cache"
	"menu-recommendation/internal/core/matcher"
	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/core/recommend"
	"menu-recommendation/internal/infrastructure/metrics"
	"menu-recommendation/internal/infrastructure/storage"
	"menu-recommendation/internal/pkg/common"
)

// canonicalizeConfidence 이 값 이상이면 기록의 메뉴명을 카탈로그 이름으로 바꾼다
const canonicalizeConfidence = 0.5

const suggestionCacheNamespace = "suggestions"

// LogMealInput 식사 기록 요청
type LogMealInput struct {
	Date     string        `json:"date" binding:"required,datetime=2006-01-02"`
	MealType menu.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	MenuText string        `json:"menuText" binding:"required,max=100"`
}

// LoggedMeal 저장된 기록과 매칭 정보
type LoggedMeal struct {
	menu.MealRecord
	MatchedMenuID   string            `json:"matchedMenuId,omitempty"`
	MatchConfidence float64           `json:"matchConfidence"`
	MatchType       matcher.MatchType `json:"matchType"`
	OriginalInput   string            `json:"originalInput,omitempty"`
}

// MenuSuggestion 자동완성 응답 항목
type MenuSuggestion struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"displayName"`
	Cuisine     menu.Cuisine `json:"cuisine"`
	Confidence  float64      `json:"confidence"`
}

// FeedbackInput 피드백 요청
type FeedbackInput struct {
	MenuID string              `json:"menuId" binding:"required"`
	Action menu.FeedbackAction `json:"action" binding:"required,oneof=select reject skip"`
}

// RecommendInput 추천 요청. MealType이 올바르지 않으면 무시한다
type RecommendInput struct {
	MealType   string
	ExcludeIDs []string
}

// Service 식사 서비스
type Service struct {
	store    storage.Store
	catalog  *menu.Catalog
	matchers *matcher.Factory
	engine   *recommend.Engine
	cache    *cache.Manager
	now      func() time.Time
}

// Option Service 설정
type Option func(*Service)

// WithClock 현재 시각 주입
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithEngine 추천 엔진 주입
func WithEngine(e *recommend.Engine) Option {
	return func(s *Service) { s.engine = e }
}

// WithCache 추천어 캐시. nil이면 캐시하지 않는다
func WithCache(m *cache.Manager) Option {
	return func(s *Service) { s.cache = m }
}

// WithMatcherFactory 매처 공유
func WithMatcherFactory(f *matcher.Factory) Option {
	return func(s *Service) { s.matchers = f }
}

// NewService 새 식사 서비스
func NewService(store storage.Store, catalog *menu.Catalog, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.matchers == nil {
		s.matchers = matcher.NewFactory()
	}
	if s.engine == nil {
		s.engine = recommend.NewEngine()
	}
	return s
}

// Catalog 메뉴 카탈로그
func (s *Service) Catalog() *menu.Catalog {
	return s.catalog
}

// Ping 저장소 상태 확인
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) currentMatcher() *matcher.Matcher {
	return s.matchers.For(s.catalog)
}

// MatchMenuText 입력 하나를 카탈로그 메뉴로 해석한다
func (s *Service) MatchMenuText(_ context.Context, text string) matcher.Result {
	res := s.currentMatcher().FindBestMatch(text)
	metrics.RecordMatch(string(res.MatchType))
	return res
}

// SuggestMenus 자동완성 후보. 빈 질의는 빈 목록
func (s *Service) SuggestMenus(_ context.Context, query string, limit int) []MenuSuggestion {
	if strings.TrimSpace(query) == "" {
		return []MenuSuggestion{}
	}

	key := cache.Key(suggestionCacheNamespace, s.catalog.Fingerprint(), query, strconv.Itoa(limit))
	if v, ok := s.cache.Get(key); ok {
		if cached, ok := v.([]MenuSuggestion); ok {
			common.LogCacheHit(suggestionCacheNamespace, query)
			metrics.RecordSuggestionCache(true)
			return slices.Clone(cached)
		}
	}
	common.LogCacheMiss(suggestionCacheNamespace, query)
	metrics.RecordSuggestionCache(false)

	found := s.currentMatcher().FindSuggestions(query, limit)
	out := make([]MenuSuggestion, 0, len(found))
	for _, sg := range found {
		out = append(out, MenuSuggestion{
			ID:          sg.Menu.ID,
			DisplayName: sg.Menu.DisplayName,
			Cuisine:     sg.Menu.Cuisine,
			Confidence:  sg.Confidence,
		})
	}

	s.cache.Set(key, slices.Clone(out))
	return out
}

// LogMeal 메뉴명을 정규화해 기록을 저장한다
func (s *Service) LogMeal(ctx context.Context, in LogMealInput) (LoggedMeal, error) {
	if err := validateLogMeal(in); err != nil {
		return LoggedMeal{}, err
	}

	res := s.MatchMenuText(ctx, in.MenuText)

	record := menu.MealRecord{
		Date:     in.Date,
		MealType: in.MealType,
		MenuText: in.MenuText,
	}
	matchedID := ""
	if res.Menu != nil && res.Confidence >= canonicalizeConfidence {
		record.MenuText = res.Menu.DisplayName
		matchedID = res.Menu.ID
	}
	// 영문 정규명처럼 매처가 못 찾은 이름도 카탈로그에 있으면 id만 붙인다
	if m, ok := s.catalog.FindByName(record.MenuText); ok {
		record.CanonicalMenuID = m.ID
	}

	saved, err := s.store.CreateMealRecord(ctx, record)
	if err != nil {
		return LoggedMeal{}, err
	}

	common.LogDebug("식사 기록 저장",
		zap.String("id", saved.ID),
		zap.String("menu_text", saved.MenuText),
		zap.String("match_type", string(res.MatchType)),
		zap.Float64("confidence", res.Confidence),
	)

	out := LoggedMeal{
		MealRecord:      saved,
		MatchedMenuID:   matchedID,
		MatchConfidence: res.Confidence,
		MatchType:       res.MatchType,
	}
	if in.MenuText != saved.MenuText {
		out.OriginalInput = in.MenuText
	}
	return out, nil
}

func validateLogMeal(in LogMealInput) error {
	if strings.TrimSpace(in.MenuText) == "" {
		return common.NewValidationError("menuText is blank")
	}
	if _, err := time.Parse(menu.DateLayout, in.Date); err != nil {
		return common.NewValidationError("date must be YYYY-MM-DD")
	}
	if _, ok := menu.ParseMealType(string(in.MealType)); !ok {
		return common.NewValidationError("unknown meal type")
	}
	return nil
}

// ListRecentRecords 최근 7일 기록
func (s *Service) ListRecentRecords(ctx context.Context) ([]menu.MealRecord, error) {
	return s.store.ListRecentMealRecords(ctx, s.now())
}

// DeleteRecord 기록 삭제. 없으면 ErrMealRecordNotFound
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteMealRecord(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return common.ErrMealRecordNotFound
	}
	return nil
}

// Preferences 현재 선호도
func (s *Service) Preferences(ctx context.Context) (menu.UserPreferences, error) {
	return s.store.GetPreferences(ctx)
}

// UpdatePreferences 선호도 전체 교체
func (s *Service) UpdatePreferences(ctx context.Context, prefs menu.UserPreferences) (menu.UserPreferences, error) {
	return s.store.UpdatePreferences(ctx, prefs.Normalize())
}

// Recommend 현재 기록, 선호도, 피드백으로 추천 목록을 만든다
func (s *Service) Recommend(ctx context.Context, in RecommendInput) ([]menu.Recommendation, error) {
	records, err := s.store.ListRecentMealRecords(ctx, s.now())
	if err != nil {
		return nil, err
	}
	prefs, err := s.store.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := s.store.ListFeedback(ctx)
	if err != nil {
		return nil, err
	}

	mealType, _ := menu.ParseMealType(in.MealType)

	start := time.Now()
	recs := s.engine.Recommend(recommend.Input{
		Menus:       s.catalog.Menus(),
		Records:     records,
		Preferences: prefs,
		Feedback:    feedback,
		MealType:    mealType,
		ExcludeIDs:  in.ExcludeIDs,
	})
	elapsed := time.Since(start)
	metrics.RecordRecommendation(elapsed, len(recs))

	common.LogDebug("추천 계산",
		zap.Int("records", len(records)),
		zap.Int("feedback", len(feedback)),
		zap.String("meal_type", string(mealType)),
		zap.Int("results", len(recs)),
		zap.Duration("elapsed", elapsed),
	)
	return recs, nil
}

// Candidates 요리 분류별 온보딩 후보
func (s *Service) Candidates(ctx context.Context) (map[menu.Cuisine][]menu.Menu, error) {
	prefs, err := s.store.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Candidates(s.catalog.Menus(), prefs), nil
}

// SubmitFeedback 추천 카드 반응 저장. 카탈로그에 없는 메뉴는 ErrUnknownMenu
func (s *Service) SubmitFeedback(ctx context.Context, in FeedbackInput) (menu.Feedback, error) {
	if _, ok := s.catalog.ByID(in.MenuID); !ok {
		return menu.Feedback{}, common.ErrUnknownMenu
	}

	fb, err := s.store.CreateFeedback(ctx, in.MenuID, in.Action)
	if err != nil {
		return menu.Feedback{}, err
	}
	metrics.RecordFeedback(string(in.Action))
	return fb, nil
}

// Insights 최근 기록과 피드백 요약
func (s *Service) Insights(ctx context.Context) (menu.InsightSummary, error) {
	records, err := s.store.ListRecentMealRecords(ctx, s.now())
	if err != nil {
		return menu.InsightSummary{}, err
	}
	feedback, err := s.store.ListFeedback(ctx)
	if err != nil {
		return menu.InsightSummary{}, err
	}
	return recommend.Insights(records, s.catalog.Menus(), feedback), nil
}

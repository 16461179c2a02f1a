// Package recommend 식사 기록, 선호도, 피드백으로 메뉴 추천 점수를 계산한다
package recommend

import (
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"menu-recommendation/internal/core/menu"
)

// Input 추천 계산 입력. 모두 호출 시점의 스냅샷이다
type Input struct {
	Menus       []menu.Menu
	Records     []menu.MealRecord
	Preferences menu.UserPreferences
	Feedback    []menu.Feedback
	MealType    menu.MealType
	ExcludeIDs  []string
}

// history 기록에서 한 번만 계산하는 값들
type history struct {
	records   []menu.MealRecord
	counts    categoryCounts
	menuIDs   map[string]bool
	menuTexts map[string]bool
}

func newHistory(records []menu.MealRecord, menus []menu.Menu) history {
	h := history{
		records:   records,
		counts:    countCategories(records, menus),
		menuIDs:   make(map[string]bool, len(records)),
		menuTexts: make(map[string]bool, len(records)),
	}
	for _, r := range records {
		if r.CanonicalMenuID != "" {
			h.menuIDs[r.CanonicalMenuID] = true
		}
		h.menuTexts[strings.ToLower(r.MenuText)] = true
	}
	return h
}

// Engine 추천 엔진. 이유 문구 선택과 후보 섞기에 난수원을 쓴다
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option Engine 설정
type Option func(*Engine)

// WithRand 난수원 주입 (테스트에서 고정 시드)
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// NewEngine 기본 난수원은 현재 시각 시드
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return e
}

func (e *Engine) intN(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}

func (e *Engine) shuffle(n int, swap func(i, j int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng.Shuffle(n, swap)
}

// Recommend 제외 목록을 뺀 메뉴마다 점수를 매겨 -50 초과만 내림차순으로 최대 13건 돌려준다.
// 동점이면 카탈로그 순서를 유지한다.
func (e *Engine) Recommend(in Input) []menu.Recommendation {
	h := newHistory(in.Records, in.Menus)
	weights := feedbackWeights(in.Feedback)

	excluded := make(map[string]bool, len(in.ExcludeIDs))
	for _, id := range in.ExcludeIDs {
		excluded[id] = true
	}

	out := make([]menu.Recommendation, 0, len(in.Menus))
	for _, m := range in.Menus {
		if excluded[m.ID] {
			continue
		}

		pref := preferenceScore(m, in.Preferences)
		div := diversityBonus(m, h.counts, len(in.Records))
		rep := repetitionPenalty(m, h)
		fb := weights[m.ID]

		score := scoreParts{
			preference: pref,
			diversity:  div,
			repetition: rep,
			feedback:   fb,
			mealType:   mealTypeBonus(m, in.MealType),
			health:     healthBonus(m, in.Preferences),
			favorite:   favoriteBonus(m, in.Preferences),
		}.total()
		if !keepScore(score) {
			continue
		}
		out = append(out, menu.Recommendation{
			Menu:              m,
			Score:             score,
			PreferenceScore:   pref,
			DiversityBonus:    div,
			RepetitionPenalty: rep,
			FeedbackWeight:    fb,
			Reason:            e.reason(m, h, in.Preferences, fb, in.MealType),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

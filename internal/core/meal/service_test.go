package meal

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-recommendation/internal/core/cache"
	"menu-recommendation/internal/core/matcher"
	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/core/recommend"
	"menu-recommendation/internal/infrastructure/config"
	"menu-recommendation/internal/infrastructure/storage"
	"menu-recommendation/internal/pkg/common"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *cache.Manager) {
	t.Helper()
	catalog, err := menu.DefaultCatalog()
	require.NoError(t, err)

	cm := cache.NewManager(config.CacheConfig{Enabled: true, MaxSize: 100, TTL: time.Minute, CleanupInterval: time.Hour})
	t.Cleanup(func() { _ = cm.Close() })

	clock := func() time.Time { return testNow }
	svc := NewService(storage.NewMemoryStore(clock), catalog,
		WithClock(clock),
		WithCache(cm),
		WithEngine(recommend.NewEngine(recommend.WithRand(rand.New(rand.NewPCG(1, 2))))),
	)
	return svc, cm
}

func TestLogMealCanonicalizes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	logged, err := svc.LogMeal(ctx, LogMealInput{Date: "2026-10-14", MealType: menu.MealLunch, MenuText: "김치찌게"})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.ID)
	assert.Equal(t, "김치찌개", logged.MenuText)
	assert.Equal(t, "kimchi-jjigae", logged.CanonicalMenuID)
	assert.Equal(t, "kimchi-jjigae", logged.MatchedMenuID)
	assert.Equal(t, matcher.MatchAlias, logged.MatchType)
	assert.InDelta(t, 0.95, logged.MatchConfidence, 1e-9)
	assert.Equal(t, "김치찌게", logged.OriginalInput)

	exact, err := svc.LogMeal(ctx, LogMealInput{Date: "2026-10-14", MealType: menu.MealDinner, MenuText: "김치찌개"})
	require.NoError(t, err)
	assert.Equal(t, matcher.MatchExact, exact.MatchType)
	assert.Empty(t, exact.OriginalInput)

	records, err := svc.ListRecentRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLogMealKeepsUnmatchedText(t *testing.T) {
	svc, _ := newTestService(t)

	logged, err := svc.LogMeal(context.Background(), LogMealInput{Date: "2026-10-13", MealType: menu.MealSnack, MenuText: "qwertyuiop"})
	require.NoError(t, err)
	assert.Equal(t, "qwertyuiop", logged.MenuText)
	assert.Empty(t, logged.CanonicalMenuID)
	assert.Empty(t, logged.MatchedMenuID)
	assert.Equal(t, matcher.MatchNone, logged.MatchType)
	assert.Zero(t, logged.MatchConfidence)
	assert.Empty(t, logged.OriginalInput)
}

func TestDeleteRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	logged, err := svc.LogMeal(ctx, LogMealInput{Date: "2026-10-14", MealType: menu.MealLunch, MenuText: "라면"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(ctx, logged.ID))
	err = svc.DeleteRecord(ctx, logged.ID)
	assert.ErrorIs(t, err, common.ErrMealRecordNotFound)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSuggestMenusUsesCache(t *testing.T) {
	svc, cm := newTestService(t)
	ctx := context.Background()

	assert.Empty(t, svc.SuggestMenus(ctx, "  ", 8))

	first := svc.SuggestMenus(ctx, "김치", 8)
	require.NotEmpty(t, first)
	assert.LessOrEqual(t, len(first), 8)
	for _, sg := range first {
		assert.NotEmpty(t, sg.ID)
		assert.LessOrEqual(t, sg.Confidence, 1.0)
	}

	// 반환값을 고쳐도 캐시는 그대로
	first[0].DisplayName = "changed"
	second := svc.SuggestMenus(ctx, "김치", 8)
	assert.NotEqual(t, "changed", second[0].DisplayName)
	assert.Equal(t, int64(1), cm.GetStats().Hits)
}

func TestSuggestMenusWithoutCache(t *testing.T) {
	catalog, err := menu.DefaultCatalog()
	require.NoError(t, err)
	svc := NewService(storage.NewMemoryStore(time.Now), catalog)

	assert.NotEmpty(t, svc.SuggestMenus(context.Background(), "짜장", 3))
}

func TestSubmitFeedback(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitFeedback(ctx, FeedbackInput{MenuID: "no-such-menu", Action: menu.ActionSelect})
	assert.ErrorIs(t, err, common.ErrUnknownMenu)

	fb, err := svc.SubmitFeedback(ctx, FeedbackInput{MenuID: "kimchi-jjigae", Action: menu.ActionSelect})
	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, testNow, fb.Timestamp)

	summary, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalFeedback)
	assert.Equal(t, []string{"김치찌개"}, summary.TopLikedMenus)
}

func TestPreferencesRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	prefs, err := svc.Preferences(ctx)
	require.NoError(t, err)
	assert.False(t, prefs.OnboardingCompleted)

	updated, err := svc.UpdatePreferences(ctx, menu.UserPreferences{MaxSpicyLevel: 1, PreferredHeavyLevel: 3})
	require.NoError(t, err)
	assert.Equal(t, []menu.Cuisine{}, updated.PreferredCuisines)
	assert.Equal(t, menu.GoalNone, updated.FitnessGoal)

	prefs, err = svc.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, prefs.MaxSpicyLevel)
}

func TestFillDemoData(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogMeal(ctx, LogMealInput{Date: "2026-10-14", MealType: menu.MealLunch, MenuText: "라면"})
	require.NoError(t, err)
	_, err = svc.SubmitFeedback(ctx, FeedbackInput{MenuID: "kimchi-jjigae", Action: menu.ActionReject})
	require.NoError(t, err)

	require.NoError(t, svc.FillDemoData(ctx))

	records, err := svc.ListRecentRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 15)
	assert.Equal(t, "2026-10-14", records[0].Date)
	assert.Equal(t, svc.Catalog().At(0).DisplayName, records[0].MenuText)
	assert.Equal(t, "2026-10-08", records[len(records)-1].Date)

	prefs, err := svc.Preferences(ctx)
	require.NoError(t, err)
	assert.True(t, prefs.OnboardingCompleted)
	assert.Equal(t, []menu.Cuisine{menu.CuisineKorean, menu.CuisineJapanese}, prefs.PreferredCuisines)
	assert.Nil(t, prefs.PreferSoup)

	summary, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, summary.TotalRecords)
	assert.Zero(t, summary.TotalFeedback)
}

func TestRecommend(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.FillDemoData(ctx))

	recs, err := svc.Recommend(ctx, RecommendInput{MealType: "brunch", ExcludeIDs: []string{"kimchi-jjigae"}})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 13)
	for i, r := range recs {
		assert.NotEqual(t, "kimchi-jjigae", r.Menu.ID)
		assert.NotEmpty(t, r.Reason)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Score, r.Score)
		}
	}

	lunch, err := svc.Recommend(ctx, RecommendInput{MealType: "lunch"})
	require.NoError(t, err)
	assert.NotEmpty(t, lunch)
}

func TestCandidates(t *testing.T) {
	svc, _ := newTestService(t)

	candidates, err := svc.Candidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, candidates, len(menu.Cuisines))
	for _, list := range candidates {
		assert.LessOrEqual(t, len(list), 8)
	}
}

func TestMatchMenuText(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.MatchMenuText(context.Background(), "프라이드치킨")
	require.NotNil(t, res.Menu)
	assert.Equal(t, "치킨", res.Menu.DisplayName)
	assert.NoError(t, svc.Ping(context.Background()))
}

func TestLogMealCanonicalNameFallback(t *testing.T) {
	svc, _ := newTestService(t)

	logged, err := svc.LogMeal(context.Background(), LogMealInput{Date: "2026-10-14", MealType: menu.MealDinner, MenuText: "Tonkatsu"})
	require.NoError(t, err)
	// 매처 결과가 기준 미만이면 입력 텍스트는 그대로 두고 id만 붙는다
	assert.Equal(t, "Tonkatsu", logged.MenuText)
	assert.Equal(t, "donkatsu", logged.CanonicalMenuID)
	assert.Empty(t, logged.OriginalInput)

	res := svc.MatchMenuText(context.Background(), "Tonkatsu")
	assert.Equal(t, res.MatchType, logged.MatchType)
	assert.InDelta(t, res.Confidence, logged.MatchConfidence, 1e-9)
	if res.Confidence < canonicalizeConfidence {
		assert.Empty(t, logged.MatchedMenuID)
	}

	records, err := svc.ListRecentRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Tonkatsu", records[0].MenuText)
	assert.Equal(t, "donkatsu", records[0].CanonicalMenuID)
}

func TestLogMealValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   LogMealInput
	}{
		{"blank menu", LogMealInput{Date: "2026-10-14", MealType: menu.MealLunch, MenuText: "   "}},
		{"bad date", LogMealInput{Date: "2026/10/14", MealType: menu.MealLunch, MenuText: "라면"}},
		{"bad meal type", LogMealInput{Date: "2026-10-14", MealType: "brunch", MenuText: "라면"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogMeal(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, common.IsValidationError(err))
			assert.Equal(t, common.ErrCodeInvalidRequest, common.AsCustomError(err).Code)
		})
	}

	records, err := svc.ListRecentRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

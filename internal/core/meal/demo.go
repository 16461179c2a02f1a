package meal

import (
	"context"

	"go.uber.org/zap"

	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/pkg/common"
)

// demoMeal 며칠 전, 끼니, 카탈로그 순번 (카탈로그 크기로 나머지)
type demoMeal struct {
	daysAgo   int
	mealType  menu.MealType
	menuIndex int
}

var demoMeals = []demoMeal{
	{0, menu.MealLunch, 0},
	{0, menu.MealDinner, 28},
	{1, menu.MealBreakfast, 81},
	{1, menu.MealLunch, 56},
	{1, menu.MealDinner, 15},
	{2, menu.MealLunch, 38},
	{2, menu.MealDinner, 93},
	{3, menu.MealLunch, 11},
	{3, menu.MealDinner, 44},
	{4, menu.MealLunch, 76},
	{4, menu.MealDinner, 2},
	{5, menu.MealLunch, 29},
	{5, menu.MealDinner, 89},
	{6, menu.MealLunch, 22},
	{6, menu.MealDinner, 51},
}

func demoPreferences() menu.UserPreferences {
	return menu.UserPreferences{
		PreferredCuisines:   []menu.Cuisine{menu.CuisineKorean, menu.CuisineJapanese},
		PreferredBases:      []menu.Base{menu.BaseRice, menu.BaseNoodle},
		PreferredProteins:   []menu.Protein{menu.ProteinPork, menu.ProteinChicken},
		MaxSpicyLevel:       2,
		PreferredHeavyLevel: 2,
		PreferredPriceRange: []menu.PriceRange{menu.PriceLow, menu.PriceMedium},
		OnboardingCompleted: true,
	}.Normalize()
}

// FillDemoData 기록과 피드백을 지우고 최근 7일 데모 기록과 데모 선호도를 채운다
func (s *Service) FillDemoData(ctx context.Context) error {
	if err := s.store.ClearMealRecords(ctx); err != nil {
		return err
	}
	if err := s.store.ClearFeedback(ctx); err != nil {
		return err
	}

	today := s.now().UTC()
	n := s.catalog.Len()
	for _, dm := range demoMeals {
		if n == 0 {
			break
		}
		m := s.catalog.At(dm.menuIndex % n)
		_, err := s.store.CreateMealRecord(ctx, menu.MealRecord{
			Date:            today.AddDate(0, 0, -dm.daysAgo).Format(menu.DateLayout),
			MealType:        dm.mealType,
			MenuText:        m.DisplayName,
			CanonicalMenuID: m.ID,
		})
		if err != nil {
			return err
		}
	}

	if _, err := s.store.UpdatePreferences(ctx, demoPreferences()); err != nil {
		return err
	}

	common.LogInfo("데모 데이터 생성", zap.Int("records", len(demoMeals)), zap.String("today", today.Format(menu.DateLayout)))
	return nil
}

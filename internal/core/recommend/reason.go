package recommend

import (
	"fmt"
	"slices"
	"strings"

	"menu-recommendation/internal/core/menu"
)

const freshStartReason = "새로운 시작! 이 메뉴로 오늘의 첫 식사를 즐겨보세요."

var fallbackReasons = []string{
	"오늘의 기분 전환에 딱 맞는 메뉴예요.",
	"균형 잡힌 식사로 추천해요.",
	"새로운 맛을 경험해보세요!",
	"당신의 취향에 맞을 거예요.",
}

// 매운 음식 기록으로 보는 표시어
var spicyMarkers = []string{"매운", "불"}

type reasonContext struct {
	menu     menu.Menu
	history  history
	prefs    menu.UserPreferences
	feedback float64
	mealType menu.MealType
}

// reasonRule 적용되면 문구와 true
type reasonRule func(rc reasonContext) (string, bool)

// 우선순위 순서
var reasonRules = []reasonRule{
	mealTypeReason,
	healthReason,
	notEatenReason,
	dominantCuisineReason,
	dominantBaseReason,
	soupReason,
	feedbackReason,
	preferredCuisineReason,
	spicyReason,
}

func (e *Engine) reason(m menu.Menu, h history, p menu.UserPreferences, fb float64, mt menu.MealType) string {
	if len(h.records) == 0 {
		return freshStartReason
	}
	rc := reasonContext{menu: m, history: h, prefs: p, feedback: fb, mealType: mt}
	for _, rule := range reasonRules {
		if msg, ok := rule(rc); ok {
			return msg
		}
	}
	return fallbackReasons[e.intN(len(fallbackReasons))]
}

func mealTypeReason(rc reasonContext) (string, bool) {
	switch {
	case rc.mealType == menu.MealBreakfast && rc.menu.HeavyLevel == 1:
		return "아침에 딱 맞는 가벼운 메뉴예요.", true
	case rc.mealType == menu.MealDinner && rc.menu.HeavyLevel == 3:
		return "저녁에 든든하게 드시기 좋은 메뉴예요.", true
	case rc.mealType == menu.MealLunch && rc.menu.HeavyLevel == 2:
		return "점심으로 적당한 메뉴예요.", true
	}
	return "", false
}

func healthReason(rc reasonContext) (string, bool) {
	if rc.prefs.PreferHealthy && (rc.menu.Protein == menu.ProteinVegetarian || rc.menu.Base == menu.BaseSalad) {
		return "건강을 생각하시는 분께 추천해요.", true
	}
	return "", false
}

func notEatenReason(rc reasonContext) (string, bool) {
	if rc.history.counts.cuisines.get(rc.menu.Cuisine) == 0 {
		return fmt.Sprintf("최근 7일 동안 %s을(를) 드시지 않아서 추천했어요.", rc.menu.Cuisine.Label()), true
	}
	return "", false
}

func dominantCuisineReason(rc reasonContext) (string, bool) {
	top, n, ok := rc.history.counts.cuisines.mostCommon()
	if !ok || top == rc.menu.Cuisine {
		return "", false
	}
	if float64(n)/float64(len(rc.history.records)) > 0.4 {
		return fmt.Sprintf("%s이(가) 많았어서 다른 종류를 추천했어요.", top.Label()), true
	}
	return "", false
}

func dominantBaseReason(rc reasonContext) (string, bool) {
	top, n, ok := rc.history.counts.bases.mostCommon()
	if !ok || top == rc.menu.Base {
		return "", false
	}
	if float64(n)/float64(len(rc.history.records)) > 0.5 {
		return fmt.Sprintf("%s 요리가 많아 오늘은 %s 메뉴를 추천했어요.", top.Label(), rc.menu.Base.Label()), true
	}
	return "", false
}

func soupReason(rc reasonContext) (string, bool) {
	if rc.prefs.PreferSoup == nil {
		return "", false
	}
	switch {
	case rc.menu.HasSoup && *rc.prefs.PreferSoup:
		return "국물 있는 메뉴를 선호하셔서 추천했어요.", true
	case !rc.menu.HasSoup && !*rc.prefs.PreferSoup:
		return "비국물 메뉴를 선호하셔서 추천했어요.", true
	}
	return "", false
}

func feedbackReason(rc reasonContext) (string, bool) {
	if rc.feedback > 10 {
		return "이전에 선택하신 적이 있어서 다시 추천해요.", true
	}
	return "", false
}

func preferredCuisineReason(rc reasonContext) (string, bool) {
	if slices.Contains(rc.prefs.PreferredCuisines, rc.menu.Cuisine) {
		return fmt.Sprintf("선호하시는 %s이에요.", rc.menu.Cuisine.Label()), true
	}
	return "", false
}

// 기록 텍스트에 매운 표시어가 있으면 매운 음식을 좋아한다고 본다
func spicyReason(rc reasonContext) (string, bool) {
	if rc.menu.SpicyLevel == 0 || rc.menu.SpicyLevel > rc.prefs.MaxSpicyLevel {
		return "", false
	}
	for _, r := range rc.history.records {
		for _, marker := range spicyMarkers {
			if strings.Contains(r.MenuText, marker) {
				return "매운 음식을 좋아하시는 것 같아 추천했어요.", true
			}
		}
	}
	return "", false
}

package recommend

import (
	"math"
	"slices"
	"strings"

	"menu-recommendation/internal/core/menu"
)

// 최종 점수 가중치. 합이 1을 넘지만 점수 스케일을 유지하기 위해 그대로 둔다
const (
	weightPreference = 0.25
	weightDiversity  = 0.2
	weightRepetition = 0.25
	weightFeedback   = 0.1
	weightMealType   = 0.1
	weightHealth     = 0.05
	weightFavorite   = 0.05

	minScore           = -50.0
	maxRecommendations = 13
	feedbackClamp      = 50.0
)

// scoreParts 가중치 적용 전 점수 요소
type scoreParts struct {
	preference, diversity, repetition, feedback float64
	mealType, health, favorite                  float64
}

func (p scoreParts) total() float64 {
	return p.preference*weightPreference +
		p.diversity*weightDiversity +
		p.repetition*weightRepetition +
		p.feedback*weightFeedback +
		p.mealType*weightMealType +
		p.health*weightHealth +
		p.favorite*weightFavorite
}

// keepScore minScore 이하는 추천에서 뺀다
func keepScore(score float64) bool { return score > minScore }

type heavyTarget struct {
	min, max, ideal int
}

func targetHeavyLevel(mt menu.MealType) heavyTarget {
	switch mt {
	case menu.MealBreakfast:
		return heavyTarget{1, 2, 1}
	case menu.MealLunch:
		return heavyTarget{1, 3, 2}
	case menu.MealDinner:
		return heavyTarget{2, 3, 3}
	case menu.MealSnack:
		return heavyTarget{1, 1, 1}
	default:
		return heavyTarget{1, 3, 2}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func preferenceScore(m menu.Menu, p menu.UserPreferences) float64 {
	score := 50.0

	if len(p.PreferredCuisines) > 0 {
		if slices.Contains(p.PreferredCuisines, m.Cuisine) {
			score += 20
		} else {
			score -= 5
		}
	}
	if len(p.PreferredBases) > 0 {
		if slices.Contains(p.PreferredBases, m.Base) {
			score += 15
		} else {
			score -= 3
		}
	}
	if len(p.PreferredProteins) > 0 {
		if slices.Contains(p.PreferredProteins, m.Protein) {
			score += 15
		} else {
			score -= 3
		}
	}

	if p.PreferSoup != nil {
		if m.HasSoup == *p.PreferSoup {
			score += 10
		} else {
			score -= 5
		}
	}

	if m.SpicyLevel > p.MaxSpicyLevel {
		score -= float64(m.SpicyLevel-p.MaxSpicyLevel) * 15
	} else if m.SpicyLevel == p.MaxSpicyLevel {
		score += 5
	}

	diff := m.HeavyLevel - p.PreferredHeavyLevel
	if diff < 0 {
		diff = -diff
	}
	score -= float64(diff) * 8

	if !slices.Contains(p.PreferredPriceRange, m.PriceRange) {
		score -= 10
	}

	return clamp(score, 0, 100)
}

func diversityBonus(m menu.Menu, cc categoryCounts, total int) float64 {
	if total == 0 {
		return 50
	}
	bonus := 50.0

	cuisineRatio := float64(cc.cuisines.get(m.Cuisine)) / float64(total)
	switch {
	case cuisineRatio == 0:
		bonus += 30
	case cuisineRatio < 0.2:
		bonus += 20
	case cuisineRatio < 0.4:
		bonus += 5
	default:
		bonus -= cuisineRatio * 30
	}

	baseRatio := float64(cc.bases.get(m.Base)) / float64(total)
	switch {
	case baseRatio == 0:
		bonus += 20
	case baseRatio < 0.3:
		bonus += 10
	default:
		bonus -= baseRatio * 20
	}

	return clamp(bonus, 0, 100)
}

func repetitionPenalty(m menu.Menu, h history) float64 {
	penalty := 100.0

	if h.menuIDs[m.ID] {
		penalty -= 80
	}
	if h.menuTexts[strings.ToLower(m.DisplayName)] {
		penalty -= 70
	}

	switch n := h.counts.cuisines.get(m.Cuisine); {
	case n >= 3:
		penalty -= 30
	case n >= 2:
		penalty -= 15
	}

	return math.Max(0, penalty)
}

func feedbackWeights(log []menu.Feedback) map[string]float64 {
	weights := make(map[string]float64)
	for _, fb := range log {
		switch fb.Action {
		case menu.ActionSelect:
			weights[fb.MenuID] += 15
		case menu.ActionReject:
			weights[fb.MenuID] -= 25
		}
	}
	for id, w := range weights {
		weights[id] = clamp(w, -feedbackClamp, feedbackClamp)
	}
	return weights
}

func mealTypeBonus(m menu.Menu, mt menu.MealType) float64 {
	if mt == "" {
		return 0
	}
	t := targetHeavyLevel(mt)
	if m.HeavyLevel < t.min || m.HeavyLevel > t.max {
		return -20
	}
	if m.HeavyLevel == t.ideal {
		return 25
	}
	return 15
}

func healthBonus(m menu.Menu, p menu.UserPreferences) float64 {
	if !p.PreferHealthy {
		return 0
	}
	bonus := 0.0
	if m.Protein == menu.ProteinVegetarian || m.Base == menu.BaseSalad {
		bonus = 20
	}
	switch m.HeavyLevel {
	case 1:
		bonus += 10
	case 3:
		bonus -= 15
	}

	switch p.FitnessGoal {
	case menu.GoalDiet:
		if m.HeavyLevel == 1 {
			bonus += 15
		}
		if m.Base == menu.BaseSalad {
			bonus += 10
		}
		if m.HeavyLevel == 3 {
			bonus -= 20
		}
	case menu.GoalMuscle:
		switch m.Protein {
		case menu.ProteinChicken, menu.ProteinBeef:
			bonus += 20
		case menu.ProteinSeafood, menu.ProteinPork:
			bonus += 10
		}
		if m.HeavyLevel >= 2 {
			bonus += 5
		}
	}
	return bonus
}

func favoriteBonus(m menu.Menu, p menu.UserPreferences) float64 {
	if slices.Contains(p.FavoriteMenuIDs, m.ID) {
		return 20
	}
	return 0
}

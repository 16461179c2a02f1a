package menu

import "slices"

// UserPreferences 사용자 선호도. 빈 집합은 "상관없음"
type UserPreferences struct {
	PreferredCuisines   []Cuisine    `json:"preferredCuisines" binding:"dive,oneof=korean chinese japanese western bunsik asian other"`
	PreferredBases      []Base       `json:"preferredBases" binding:"dive,oneof=rice noodle bread salad other"`
	PreferredProteins   []Protein    `json:"preferredProteins" binding:"dive,oneof=pork beef chicken seafood vegetarian mixed"`
	PreferSoup          *bool        `json:"preferSoup"`
	MaxSpicyLevel       int          `json:"maxSpicyLevel" binding:"min=0,max=3"`
	PreferredHeavyLevel int          `json:"preferredHeavyLevel" binding:"min=1,max=3"`
	PreferredPriceRange []PriceRange `json:"preferredPriceRange" binding:"dive,oneof=low medium high"`
	ExcludedIngredients []string     `json:"excludedIngredients"`
	FavoriteMenuIDs     []string     `json:"favoriteMenuIds"`
	PreferHealthy       bool         `json:"preferHealthy"`
	FitnessGoal         FitnessGoal  `json:"fitnessGoal" binding:"omitempty,oneof=none diet muscle"`
	OnboardingCompleted bool         `json:"onboardingCompleted"`
}

// DefaultPreferences 처음 상태의 선호도
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		PreferredCuisines:   []Cuisine{},
		PreferredBases:      []Base{},
		PreferredProteins:   []Protein{},
		MaxSpicyLevel:       2,
		PreferredHeavyLevel: 2,
		PreferredPriceRange: []PriceRange{PriceLow, PriceMedium, PriceHigh},
		ExcludedIngredients: []string{},
		FavoriteMenuIDs:     []string{},
		FitnessGoal:         GoalNone,
	}
}

// Normalize nil 슬라이스를 빈 슬라이스로 바꾸고 빈 목표를 none으로 채운다
func (p UserPreferences) Normalize() UserPreferences {
	if p.PreferredCuisines == nil {
		p.PreferredCuisines = []Cuisine{}
	}
	if p.PreferredBases == nil {
		p.PreferredBases = []Base{}
	}
	if p.PreferredProteins == nil {
		p.PreferredProteins = []Protein{}
	}
	if p.PreferredPriceRange == nil {
		p.PreferredPriceRange = []PriceRange{}
	}
	if p.ExcludedIngredients == nil {
		p.ExcludedIngredients = []string{}
	}
	if p.FavoriteMenuIDs == nil {
		p.FavoriteMenuIDs = []string{}
	}
	if p.FitnessGoal == "" {
		p.FitnessGoal = GoalNone
	}
	return p
}

// Clone 슬라이스까지 복사한 사본
func (p UserPreferences) Clone() UserPreferences {
	p.PreferredCuisines = slices.Clone(p.PreferredCuisines)
	p.PreferredBases = slices.Clone(p.PreferredBases)
	p.PreferredProteins = slices.Clone(p.PreferredProteins)
	p.PreferredPriceRange = slices.Clone(p.PreferredPriceRange)
	p.ExcludedIngredients = slices.Clone(p.ExcludedIngredients)
	p.FavoriteMenuIDs = slices.Clone(p.FavoriteMenuIDs)
	if p.PreferSoup != nil {
		v := *p.PreferSoup
		p.PreferSoup = &v
	}
	return p.Normalize()
}

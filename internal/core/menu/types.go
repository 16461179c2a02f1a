// Package menu 메뉴 카탈로그, 식사 기록, 선호도, 피드백 등 도메인 타입
package menu

import "time"

// Cuisine 음식 종류
type Cuisine string

const (
	CuisineKorean   Cuisine = "korean"
	CuisineChinese  Cuisine = "chinese"
	CuisineJapanese Cuisine = "japanese"
	CuisineWestern  Cuisine = "western"
	CuisineBunsik   Cuisine = "bunsik"
	CuisineAsian    Cuisine = "asian"
	CuisineOther    Cuisine = "other"
)

// Cuisines 전체 음식 종류 (고정 순서)
var Cuisines = []Cuisine{
	CuisineKorean, CuisineChinese, CuisineJapanese, CuisineWestern,
	CuisineBunsik, CuisineAsian, CuisineOther,
}

// Base 주식 구분
type Base string

const (
	BaseRice   Base = "rice"
	BaseNoodle Base = "noodle"
	BaseBread  Base = "bread"
	BaseSalad  Base = "salad"
	BaseOther  Base = "other"
)

// Protein 주 단백질
type Protein string

const (
	ProteinPork       Protein = "pork"
	ProteinBeef       Protein = "beef"
	ProteinChicken    Protein = "chicken"
	ProteinSeafood    Protein = "seafood"
	ProteinVegetarian Protein = "vegetarian"
	ProteinMixed      Protein = "mixed"
)

// PriceRange 가격대
type PriceRange string

const (
	PriceLow    PriceRange = "low"
	PriceMedium PriceRange = "medium"
	PriceHigh   PriceRange = "high"
)

// MealType 끼니
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ParseMealType 알 수 없는 값이면 false
func ParseMealType(s string) (MealType, bool) {
	switch mt := MealType(s); mt {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return mt, true
	}
	return "", false
}

// FeedbackAction 추천 카드에 대한 반응
type FeedbackAction string

const (
	ActionSelect FeedbackAction = "select"
	ActionReject FeedbackAction = "reject"
	ActionSkip   FeedbackAction = "skip"
)

// FitnessGoal 운동 목표
type FitnessGoal string

const (
	GoalNone   FitnessGoal = "none"
	GoalDiet   FitnessGoal = "diet"
	GoalMuscle FitnessGoal = "muscle"
)

// Menu 카탈로그 메뉴
type Menu struct {
	ID            string     `json:"id" yaml:"id" validate:"required"`
	CanonicalName string     `json:"canonicalName" yaml:"canonicalName" validate:"required"`
	DisplayName   string     `json:"displayName" yaml:"displayName" validate:"required"`
	Cuisine       Cuisine    `json:"cuisine" yaml:"cuisine" validate:"required,oneof=korean chinese japanese western bunsik asian other"`
	Base          Base       `json:"base" yaml:"base" validate:"required,oneof=rice noodle bread salad other"`
	HasSoup       bool       `json:"hasSoup" yaml:"hasSoup"`
	Protein       Protein    `json:"protein" yaml:"protein" validate:"required,oneof=pork beef chicken seafood vegetarian mixed"`
	SpicyLevel    int        `json:"spicyLevel" yaml:"spicyLevel" validate:"min=0,max=3"`
	HeavyLevel    int        `json:"heavyLevel" yaml:"heavyLevel" validate:"min=1,max=3"`
	PriceRange    PriceRange `json:"priceRange" yaml:"priceRange" validate:"required,oneof=low medium high"`
	Synonyms      []string   `json:"synonyms,omitempty" yaml:"synonyms" validate:"dive,required"`
}

// MealRecord 사용자가 기록한 식사
type MealRecord struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	MealType        MealType `json:"mealType"`
	MenuText        string   `json:"menuText"`
	CanonicalMenuID string   `json:"canonicalMenuId,omitempty"`
}

// Feedback 추천에 대한 암묵적 피드백
type Feedback struct {
	ID        string         `json:"id"`
	MenuID    string         `json:"menuId"`
	Action    FeedbackAction `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
}

// Recommendation 점수가 매겨진 추천 결과
type Recommendation struct {
	Menu              Menu    `json:"menu"`
	Score             float64 `json:"score"`
	PreferenceScore   float64 `json:"preferenceScore"`
	DiversityBonus    float64 `json:"diversityBonus"`
	RepetitionPenalty float64 `json:"repetitionPenalty"`
	FeedbackWeight    float64 `json:"feedbackWeight"`
	Reason            string  `json:"reason"`
}

// InsightSummary 최근 식습관 요약
type InsightSummary struct {
	RecentCategoryDistribution map[Cuisine]int `json:"recentCategoryDistribution"`
	RecentBaseDistribution     map[Base]int    `json:"recentBaseDistribution"`
	TopLikedMenus              []string        `json:"topLikedMenus"`
	TopDislikedMenus           []string        `json:"topDislikedMenus"`
	DiversityScore             int             `json:"diversityScore"`
	TotalRecords               int             `json:"totalRecords"`
	TotalFeedback              int             `json:"totalFeedback"`
}

// DateLayout 식사 기록 날짜 형식
const DateLayout = "2006-01-02"

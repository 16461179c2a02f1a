package menu

var cuisineLabels = map[Cuisine]string{
	CuisineKorean:   "한식",
	CuisineChinese:  "중식",
	CuisineJapanese: "일식",
	CuisineWestern:  "양식",
	CuisineBunsik:   "분식",
	CuisineAsian:    "아시안",
	CuisineOther:    "기타",
}

var baseLabels = map[Base]string{
	BaseRice:   "밥",
	BaseNoodle: "면",
	BaseBread:  "빵",
	BaseSalad:  "샐러드",
	BaseOther:  "기타",
}

var proteinLabels = map[Protein]string{
	ProteinPork:       "돼지고기",
	ProteinBeef:       "소고기",
	ProteinChicken:    "닭고기",
	ProteinSeafood:    "해산물",
	ProteinVegetarian: "채식",
	ProteinMixed:      "혼합",
}

var mealTypeLabels = map[MealType]string{
	MealBreakfast: "아침",
	MealLunch:     "점심",
	MealDinner:    "저녁",
	MealSnack:     "간식",
}

// Label 한국어 표시명. 모르는 값은 그대로 반환
func (c Cuisine) Label() string { return labelOr(cuisineLabels, c) }

func (b Base) Label() string { return labelOr(baseLabels, b) }

func (p Protein) Label() string { return labelOr(proteinLabels, p) }

func (m MealType) Label() string { return labelOr(mealTypeLabels, m) }

func labelOr[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

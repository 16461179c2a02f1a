package recommend

import (
	"math"
	"sort"

	"menu-recommendation/internal/core/menu"
)

const (
	topMenuCount = 3
	// 음식 종류 7 + 주식 구분 5
	maxDiversity = 12
)

// Insights 최근 기록과 피드백 요약. 같은 입력이면 같은 결과
func Insights(records []menu.MealRecord, menus []menu.Menu, log []menu.Feedback) menu.InsightSummary {
	cc := countCategories(records, menus)

	score := int(math.Round(float64(cc.cuisines.distinct()+cc.bases.distinct()) / maxDiversity * 100))
	if score > 100 {
		score = 100
	}

	return menu.InsightSummary{
		RecentCategoryDistribution: cc.cuisines.snapshot(),
		RecentBaseDistribution:     cc.bases.snapshot(),
		TopLikedMenus:              topMenus(log, menus, menu.ActionSelect),
		TopDislikedMenus:           topMenus(log, menus, menu.ActionReject),
		DiversityScore:             score,
		TotalRecords:               len(records),
		TotalFeedback:              len(log),
	}
}

// topMenus action 횟수 상위 표시명. 동점이면 피드백 로그에서 먼저 나온 메뉴
func topMenus(log []menu.Feedback, menus []menu.Menu, action menu.FeedbackAction) []string {
	byID := make(map[string]menu.Menu, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}

	counts := newTally[string]()
	for _, fb := range log {
		if fb.Action != action {
			continue
		}
		if _, ok := byID[fb.MenuID]; ok {
			counts.add(fb.MenuID)
		}
	}

	ids := append([]string(nil), counts.order...)
	sort.SliceStable(ids, func(i, j int) bool {
		return counts.get(ids[i]) > counts.get(ids[j])
	})
	if len(ids) > topMenuCount {
		ids = ids[:topMenuCount]
	}

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = byID[id].DisplayName
	}
	return names
}

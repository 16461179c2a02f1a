package recommend

import (
	"strings"

	"menu-recommendation/internal/core/menu"
)

// tally 처음 등장한 순서를 기억하는 카운터
type tally[K comparable] struct {
	order  []K
	counts map[K]int
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{counts: make(map[K]int)}
}

func (t *tally[K]) add(k K) {
	if _, ok := t.counts[k]; !ok {
		t.order = append(t.order, k)
	}
	t.counts[k]++
}

func (t *tally[K]) get(k K) int { return t.counts[k] }

func (t *tally[K]) distinct() int { return len(t.order) }

// mostCommon 최댓값 중 가장 먼저 등장한 키
func (t *tally[K]) mostCommon() (K, int, bool) {
	var (
		best  K
		count int
	)
	for _, k := range t.order {
		if c := t.counts[k]; c > count {
			best, count = k, c
		}
	}
	return best, count, count > 0
}

func (t *tally[K]) snapshot() map[K]int {
	out := make(map[K]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// resolveRecord 기록을 카탈로그 메뉴에 대응시킨다 (id 또는 표시명 일치, 카탈로그 순서 우선)
func resolveRecord(r menu.MealRecord, menus []menu.Menu) (menu.Menu, bool) {
	text := strings.ToLower(r.MenuText)
	for _, m := range menus {
		if (r.CanonicalMenuID != "" && m.ID == r.CanonicalMenuID) || strings.ToLower(m.DisplayName) == text {
			return m, true
		}
	}
	return menu.Menu{}, false
}

// categoryCounts 최근 기록의 cuisine/base 분포
type categoryCounts struct {
	cuisines *tally[menu.Cuisine]
	bases    *tally[menu.Base]
}

func countCategories(records []menu.MealRecord, menus []menu.Menu) categoryCounts {
	cc := categoryCounts{cuisines: newTally[menu.Cuisine](), bases: newTally[menu.Base]()}
	for _, r := range records {
		if m, ok := resolveRecord(r, menus); ok {
			cc.cuisines.add(m.Cuisine)
			cc.bases.add(m.Base)
		}
	}
	return cc
}

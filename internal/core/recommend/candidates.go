package recommend

import "menu-recommendation/internal/core/menu"

const candidatesPerCuisine = 8

// Candidates 온보딩용 음식 종류별 후보. 매운 정도가 허용치 이하인 메뉴를 섞어 최대 8개씩
func (e *Engine) Candidates(menus []menu.Menu, p menu.UserPreferences) map[menu.Cuisine][]menu.Menu {
	out := make(map[menu.Cuisine][]menu.Menu, len(menu.Cuisines))
	for _, c := range menu.Cuisines {
		filtered := make([]menu.Menu, 0)
		for _, m := range menus {
			if m.Cuisine == c && m.SpicyLevel <= p.MaxSpicyLevel {
				filtered = append(filtered, m)
			}
		}
		e.shuffle(len(filtered), func(i, j int) {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		})
		if len(filtered) > candidatesPerCuisine {
			filtered = filtered[:candidatesPerCuisine]
		}
		out[c] = filtered
	}
	return out
}

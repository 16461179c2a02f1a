package matcher

import (
	"strings"

	"menu-recommendation/internal/core/menu"
)

// AliasGroup 대표 메뉴명과 흔한 오타, 줄임말, 변형
type AliasGroup struct {
	Canonical string
	Aliases   []string
}

// 정적 별칭 표. 순서가 충돌 해소 순서다
var staticAliasGroups = []AliasGroup{
	{"김치찌개", []string{"김찌", "김치찌게", "김치찌깨", "김치 찌개", "김치찌개~"}},
	{"된장찌개", []string{"된찌", "된장찌게", "된장찌깨", "된장 찌개"}},
	{"제육볶음", []string{"제육", "제육복음", "제육볶음~", "제육볶"}},
	{"김치볶음밥", []string{"김볶", "김치볶음밥~", "김치 볶음밥", "김치볶음밥!"}},
	{"불고기", []string{"불고기~", "소불고기", "불고기정식"}},
	{"비빔밥", []string{"비빔밥~", "비빔", "비빔밥!"}},
	{"삼겹살", []string{"삼겹", "삼겹살구이", "삼겹살~"}},
	{"돈까스", []string{"돈가스", "돈까쓰", "돈카츠", "톤카츠", "돈까스~", "등심돈까스", "안심돈까스"}},
	{"짜장면", []string{"짜장", "자장면", "짜장면~", "짜장밥"}},
	{"짬뽕", []string{"짬뽕~", "짬뽕!"}},
	{"볶음밥", []string{"볶밥", "볶음밥~"}},
	{"라면", []string{"라면~", "라멘"}},
	{"우동", []string{"우동~", "우동면"}},
	{"초밥", []string{"초밥~", "스시", "스시~"}},
	{"삼계탕", []string{"삼계탕~", "삼게탕", "삼겨탕"}},
	{"냉면", []string{"냉면~", "랭면", "물냉면", "비빔냉면"}},
	{"부대찌개", []string{"부찌", "부대찌게", "부대찌깨"}},
	{"순두부찌개", []string{"순두부", "순두부찌게", "순찌"}},
	{"떡볶이", []string{"떡볶기", "떡볶이~", "떡볶", "떡복이"}},
	{"튀김", []string{"튀김~", "튀김!"}},
	{"만두", []string{"만두~", "군만두", "물만두", "찐만두"}},
	{"칼국수", []string{"칼국수~", "칼국", "칼국쑤"}},
	{"수제비", []string{"수제비~", "수제비!"}},
	{"김밥", []string{"김밥~", "김밥!"}},
	{"햄버거", []string{"햄버거~", "버거", "햄벅거", "함버거"}},
	{"피자", []string{"피자~", "피짜", "피자!"}},
	{"파스타", []string{"파스타~", "스파게티", "파스타!"}},
	{"샐러드", []string{"샐러드~", "사라다", "샐러드!"}},
	{"카레", []string{"카레~", "카레라이스", "카레!"}},
	{"오므라이스", []string{"오므라이스~", "오믈렛", "오므라이스!"}},
	{"치킨", []string{"치킨~", "후라이드", "양념치킨", "치킨!"}},
	{"족발", []string{"족발~", "족발!"}},
	{"보쌈", []string{"보쌈~", "보쌈!"}},
	{"갈비", []string{"갈비~", "소갈비", "돼지갈비", "갈비구이"}},
	{"갈비탕", []string{"갈비탕~", "갈비탕!"}},
	{"설렁탕", []string{"설렁탕~", "설렁탕!", "설농탕"}},
	{"곰탕", []string{"곰탕~", "곰탕!"}},
	{"육개장", []string{"육개장~", "육개장!"}},
	{"해장국", []string{"해장국~", "해장국!", "뼈해장국"}},
	{"감자탕", []string{"감자탕~", "감자탕!"}},
	{"닭갈비", []string{"닭갈비~", "닭갈비!", "춘천닭갈비"}},
	{"닭볶음탕", []string{"닭볶음탕~", "닭볶음탕!", "닭도리탕"}},
	{"쌀국수", []string{"쌀국수~", "포", "pho", "퍼"}},
	{"팟타이", []string{"팟타이~", "팟타이!", "패드타이"}},
	{"카오팟", []string{"카오팟~", "카오팟!"}},
	{"마라탕", []string{"마라탕~", "마라탕!", "마라샹궈"}},
	{"훠궈", []string{"훠궈~", "훠거", "훠꿔", "샤브샤브"}},
	{"탕수육", []string{"탕수육~", "탕수육!", "탕쑤육"}},
	{"깐풍기", []string{"깐풍기~", "깐풍기!", "깐퐁기"}},
	{"볶음면", []string{"볶음면~", "볶음면!"}},
	{"회", []string{"회~", "사시미", "회!"}},
	{"덮밥", []string{"덮밥~", "덮밥!"}},
	{"정식", []string{"정식~", "정식!"}},
	{"국밥", []string{"국밥~", "국밥!"}},
}

// StaticAliasGroups 정적 별칭 표의 사본
func StaticAliasGroups() []AliasGroup {
	out := make([]AliasGroup, len(staticAliasGroups))
	for i, g := range staticAliasGroups {
		out[i] = AliasGroup{Canonical: g.Canonical, Aliases: append([]string(nil), g.Aliases...)}
	}
	return out
}

// AliasTable 소문자 별칭 → 소문자 대표 표시명
type AliasTable struct {
	targets map[string]string
}

// NewAliasTable 정적 별칭 다음 카탈로그 동의어 순으로 채운다. 같은 키는 나중 값이 이긴다
func NewAliasTable(menus []menu.Menu) *AliasTable {
	t := &AliasTable{targets: make(map[string]string)}
	for _, g := range staticAliasGroups {
		canonical := strings.ToLower(g.Canonical)
		for _, a := range g.Aliases {
			t.targets[strings.ToLower(a)] = canonical
		}
	}
	for _, m := range menus {
		display := strings.ToLower(m.DisplayName)
		for _, s := range m.Synonyms {
			t.targets[strings.ToLower(s)] = display
		}
	}
	return t
}

// Lookup alias는 이미 소문자로 정리된 값이어야 한다
func (t *AliasTable) Lookup(alias string) (string, bool) {
	target, ok := t.targets[alias]
	return target, ok
}

// Len 등록된 별칭 수
func (t *AliasTable) Len() int { return len(t.targets) }

// AliasesFor 대표명이 표시명에 포함되는 모든 그룹의 별칭
func AliasesFor(displayName string) []string {
	var out []string
	for _, g := range staticAliasGroups {
		if strings.Contains(displayName, g.Canonical) {
			out = append(out, g.Aliases...)
		}
	}
	return out
}

// Package matcher 자유 입력 메뉴명을 카탈로그 메뉴로 해석한다
package matcher

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"menu-recommendation/internal/core/menu"
)

// MatchType 매칭 단계
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchAlias      MatchType = "alias"
	MatchNormalized MatchType = "normalized"
	MatchPartial    MatchType = "partial"
	MatchChosung    MatchType = "chosung"
	MatchFuzzy      MatchType = "fuzzy"
	MatchDecomposed MatchType = "decomposed"
	MatchNone       MatchType = "none"
)

// 단계별 신뢰도와 수용 기준
const (
	confidenceExact      = 1.0
	confidenceAlias      = 0.95
	confidenceNormalized = 0.95
	confidencePartial    = 0.85
	confidenceChosung    = 0.75

	minFuzzyConfidence      = 0.5
	minDecomposedConfidence = 0.45

	defaultSuggestionLimit = 5
)

var decorationPattern = regexp.MustCompile(`[~!?.,\s]+`)

// Result 최선 매칭 결과. Menu가 nil이면 매칭 없음
type Result struct {
	Menu       *menu.Menu `json:"menu"`
	Confidence float64    `json:"confidence"`
	MatchType  MatchType  `json:"matchType"`
}

// Suggestion 자동완성 후보
type Suggestion struct {
	Menu       menu.Menu `json:"menu"`
	Confidence float64   `json:"confidence"`
}

type precomputed struct {
	menu           menu.Menu
	lowerName      string
	normalizedName string
	leadConsonants string
}

// Matcher 카탈로그별 매칭 인덱스. 생성 후에는 읽기 전용이라 동시 사용에 안전하다
type Matcher struct {
	items   []precomputed
	exact   map[string]int
	aliases *AliasTable
	index   *Index
}

// New 카탈로그 순서대로 인덱스를 만든다
func New(menus []menu.Menu) *Matcher {
	m := &Matcher{
		items:   make([]precomputed, len(menus)),
		exact:   make(map[string]int, len(menus)),
		aliases: NewAliasTable(menus),
	}

	entries := make([]indexEntry, len(menus))
	for i, mn := range menus {
		lower := strings.ToLower(mn.DisplayName)
		lead := ExtractLeadConsonants(mn.DisplayName)
		m.items[i] = precomputed{
			menu:           mn,
			lowerName:      lower,
			normalizedName: normalize(lower),
			leadConsonants: lead,
		}
		if _, dup := m.exact[lower]; !dup {
			m.exact[lower] = i
		}
		entries[i] = indexEntry{
			lowerName: lower,
			fields: []indexField{
				{weight: weightDisplayName, values: runeValues(lower)},
				{weight: weightSynonyms, values: runeValues(mn.Synonyms...)},
				{weight: weightDecomposed, values: runeValues(Decompose(lower))},
				{weight: weightAliases, values: runeValues(AliasesFor(mn.DisplayName)...)},
				{weight: weightLead, values: runeValues(lead)},
			},
		}
	}
	m.index = newIndex(entries)
	return m
}

func normalize(s string) string {
	return decorationPattern.ReplaceAllString(s, "")
}

func none() Result {
	return Result{Confidence: 0, MatchType: MatchNone}
}

func (m *Matcher) result(i int, confidence float64, t MatchType) Result {
	mn := m.items[i].menu
	return Result{Menu: &mn, Confidence: confidence, MatchType: t}
}

// FindBestMatch exact → alias → normalized → partial → chosung → fuzzy → decomposed 순으로
// 처음 성공한 단계의 결과를 돌려준다
func (m *Matcher) FindBestMatch(input string) Result {
	raw := strings.TrimSpace(norm.NFC.String(input))
	lowered := strings.ToLower(raw)
	if lowered == "" {
		return none()
	}

	if i, ok := m.exact[lowered]; ok {
		return m.result(i, confidenceExact, MatchExact)
	}

	if target, ok := m.aliases.Lookup(lowered); ok {
		if i, ok := m.exact[target]; ok {
			return m.result(i, confidenceAlias, MatchAlias)
		}
	}

	normalized := normalize(lowered)
	if normalized == "" {
		return none()
	}
	for i, it := range m.items {
		if it.normalizedName == normalized {
			return m.result(i, confidenceNormalized, MatchNormalized)
		}
	}

	for i, it := range m.items {
		if strings.Contains(it.lowerName, normalized) ||
			strings.Contains(normalized, strings.Join(strings.Fields(it.lowerName), "")) {
			return m.result(i, confidencePartial, MatchPartial)
		}
	}

	if lead := ExtractLeadConsonants(raw); utf8.RuneCountInString(lead) >= 2 {
		for i, it := range m.items {
			if it.leadConsonants == lead {
				return m.result(i, confidenceChosung, MatchChosung)
			}
		}
	}

	if hits := m.index.Search(raw); len(hits) > 0 && hits[0].Similarity >= minFuzzyConfidence {
		return m.result(hits[0].Position, hits[0].Similarity, MatchFuzzy)
	}

	if hits := m.index.Search(Decompose(lowered)); len(hits) > 0 && hits[0].Similarity >= minDecomposedConfidence {
		return m.result(hits[0].Position, hits[0].Similarity, MatchDecomposed)
	}

	return none()
}

// FindSuggestions 인덱스 검색 상위 limit건. limit <= 0 이면 5건
func (m *Matcher) FindSuggestions(input string, limit int) []Suggestion {
	raw := norm.NFC.String(input)
	if strings.TrimSpace(raw) == "" {
		return []Suggestion{}
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	hits := m.index.Search(raw)
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Suggestion, len(hits))
	for i, h := range hits {
		out[i] = Suggestion{Menu: m.items[h.Position].menu, Confidence: h.Similarity}
	}
	return out
}

// Len 인덱싱된 메뉴 수
func (m *Matcher) Len() int { return len(m.items) }

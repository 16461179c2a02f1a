package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"menu-recommendation/internal/core/menu"
)

func defaultMenus(t *testing.T) []menu.Menu {
	t.Helper()
	c, err := menu.DefaultCatalog()
	require.NoError(t, err)
	return c.Menus()
}

func testMenu(id, name string) menu.Menu {
	return menu.Menu{
		ID: id, CanonicalName: id, DisplayName: name, Cuisine: menu.CuisineKorean,
		Base: menu.BaseRice, Protein: menu.ProteinMixed, HeavyLevel: 2, PriceRange: menu.PriceLow,
	}
}

func TestFindBestMatchExactForEveryMenu(t *testing.T) {
	menus := defaultMenus(t)
	m := New(menus)
	for _, mn := range menus {
		r := m.FindBestMatch(mn.DisplayName)
		require.NotNil(t, r.Menu, mn.DisplayName)
		assert.Equal(t, mn.ID, r.Menu.ID)
		assert.Equal(t, MatchExact, r.MatchType)
		assert.Equal(t, 1.0, r.Confidence)
	}
}

func TestFindBestMatchDeclaredAliases(t *testing.T) {
	menus := defaultMenus(t)
	m := New(menus)
	table := NewAliasTable(menus)

	names := map[string]bool{}
	for _, mn := range menus {
		names[strings.ToLower(mn.DisplayName)] = true
	}

	checked := 0
	for _, g := range StaticAliasGroups() {
		for _, alias := range g.Aliases {
			key := strings.ToLower(alias)
			if names[key] {
				continue
			}
			target, ok := table.Lookup(key)
			require.True(t, ok)
			if !names[target] {
				continue
			}
			r := m.FindBestMatch(alias)
			require.NotNil(t, r.Menu, alias)
			assert.Equal(t, target, strings.ToLower(r.Menu.DisplayName), alias)
			assert.Equal(t, MatchAlias, r.MatchType, alias)
			assert.Equal(t, 0.95, r.Confidence, alias)
			checked++
		}
	}
	assert.Greater(t, checked, 100)
}

func TestFindBestMatchCascade(t *testing.T) {
	m := New(defaultMenus(t))

	tests := []struct {
		name       string
		input      string
		wantID     string
		wantType   MatchType
		confidence float64
	}{
		{"exact", "김치찌개", "kimchi-jjigae", MatchExact, 1.0},
		{"exact padded", "  짬뽕 ", "jjamppong", MatchExact, 1.0},
		{"alias typo", "김치찌게", "kimchi-jjigae", MatchAlias, 0.95},
		{"alias abbreviation", "김찌", "kimchi-jjigae", MatchAlias, 0.95},
		{"catalog synonym", "프라이드치킨", "chicken", MatchAlias, 0.95},
		{"normalized", "김치 찌개!", "kimchi-jjigae", MatchNormalized, 0.95},
		{"partial", "점심에 먹은 김치찌개", "kimchi-jjigae", MatchPartial, 0.85},
		{"lead consonants", "ㄱㅊㅉㄱ", "kimchi-jjigae", MatchChosung, 0.75},
		{"nfd input", norm.NFD.String("된장찌개"), "doenjang-jjigae", MatchExact, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := m.FindBestMatch(tt.input)
			require.NotNil(t, r.Menu)
			assert.Equal(t, tt.wantID, r.Menu.ID)
			assert.Equal(t, tt.wantType, r.MatchType)
			assert.Equal(t, tt.confidence, r.Confidence)
		})
	}
}

func TestFindBestMatchNone(t *testing.T) {
	m := New(defaultMenus(t))
	for _, input := range []string{"", "   ", "~!?", "qwertyuiop", "ㅃ"} {
		r := m.FindBestMatch(input)
		assert.Nil(t, r.Menu, input)
		assert.Equal(t, MatchNone, r.MatchType, input)
		assert.Equal(t, 0.0, r.Confidence, input)
	}
}

func TestFindBestMatchFuzzy(t *testing.T) {
	m := New([]menu.Menu{testMenu("carbonara", "carbonara")})

	r := m.FindBestMatch("carbonera")
	require.NotNil(t, r.Menu)
	assert.Equal(t, MatchFuzzy, r.MatchType)
	assert.InDelta(t, 8.0/9.0, r.Confidence, 1e-9)
}

func TestFindBestMatchDecomposed(t *testing.T) {
	m := New([]menu.Menu{testMenu("jjukkumi", "쭈꾸미볶음")})

	// 음절 단위로는 세 글자가 틀렸지만 자모 단위로는 12개 중 3개만 다르다
	r := m.FindBestMatch("주구미복음")
	require.NotNil(t, r.Menu)
	assert.Equal(t, "jjukkumi", r.Menu.ID)
	assert.Equal(t, MatchDecomposed, r.MatchType)
	assert.InDelta(t, 0.5, r.Confidence, 1e-9)
}

func TestConfidenceBounds(t *testing.T) {
	m := New(defaultMenus(t))
	inputs := []string{"김치", "떡뽁이", "짜장", "ㄸㅂㅇ", "스테이크덮밥", "pizza", "불", "된장국", "x"}
	for _, in := range inputs {
		r := m.FindBestMatch(in)
		assert.GreaterOrEqual(t, r.Confidence, 0.0, in)
		assert.LessOrEqual(t, r.Confidence, 1.0, in)
		assert.Equal(t, r.MatchType == MatchNone, r.Menu == nil, in)
	}
}

func TestFindSuggestions(t *testing.T) {
	m := New(defaultMenus(t))

	assert.Empty(t, m.FindSuggestions("", 8))
	assert.Empty(t, m.FindSuggestions("  ", 8))
	assert.Empty(t, m.FindSuggestions("김", 8))

	got := m.FindSuggestions("김치", 8)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 8)

	ids := make([]string, 0, len(got))
	for i, s := range got {
		ids = append(ids, s.Menu.ID)
		if i > 0 {
			assert.LessOrEqual(t, s.Confidence, got[i-1].Confidence)
		}
	}
	assert.Contains(t, ids, "kimchi-jjigae")
	assert.Contains(t, ids, "kimchi-bokkeumbap")

	assert.LessOrEqual(t, len(m.FindSuggestions("김치", 0)), 5)
	assert.Len(t, m.FindSuggestions("김치", 1), 1)
}

func TestAliasTable(t *testing.T) {
	mn := testMenu("kimchi-stew", "김치찌개 정식")
	mn.Synonyms = []string{"김찌"}
	table := NewAliasTable([]menu.Menu{mn})

	target, ok := table.Lookup("김찌")
	require.True(t, ok)
	assert.Equal(t, "김치찌개 정식", target)

	target, ok = table.Lookup("된찌")
	require.True(t, ok)
	assert.Equal(t, "된장찌개", target)

	_, ok = table.Lookup("없음")
	assert.False(t, ok)
	assert.Positive(t, table.Len())

	aliases := AliasesFor("돼지국밥")
	assert.Contains(t, aliases, "국밥~")
	assert.Empty(t, AliasesFor("그릭요거트"))
}

func TestSubstringDistance(t *testing.T) {
	tests := []struct {
		p, text string
		want    int
	}{
		{"abc", "xxabcxx", 0},
		{"abc", "xxabxx", 1},
		{"abc", "", 3},
		{"abc", "axc", 1},
		{"김치지개", "김치찌개", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, substringDistance([]rune(tt.p), []rune(tt.text)), tt.p+"/"+tt.text)
	}
}

func TestFactory(t *testing.T) {
	c, err := menu.DefaultCatalog()
	require.NoError(t, err)

	f := NewFactory()
	a := f.For(c)
	assert.Same(t, a, f.For(c))

	other, err := menu.NewCatalog([]menu.Menu{testMenu("x", "엑스")})
	require.NoError(t, err)
	assert.NotSame(t, a, f.For(other))
	assert.Equal(t, 2, f.Size())

	f.Reset()
	assert.Equal(t, 0, f.Size())
	assert.NotSame(t, a, f.For(c))
}

package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	require.GreaterOrEqual(t, c.Len(), 94)

	perCuisine := map[Cuisine]int{}
	for _, m := range c.Menus() {
		perCuisine[m.Cuisine]++
	}
	for _, cu := range Cuisines {
		assert.Positive(t, perCuisine[cu], "cuisine %s has no menus", cu)
	}

	m, ok := c.ByID("kimchi-jjigae")
	require.True(t, ok)
	assert.Equal(t, "김치찌개", m.DisplayName)
	assert.Equal(t, m, c.At(0))
}

func TestCatalogFindByName(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	tests := []struct {
		name   string
		input  string
		wantID string
	}{
		{"display name", "김치찌개", "kimchi-jjigae"},
		{"padded", "  짬뽕 ", "jjamppong"},
		{"canonical name", "Tonkatsu", "donkatsu"},
		{"synonym", "베트남쌀국수", "ssalguksu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := c.FindByName(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, m.ID)
		})
	}

	_, ok := c.FindByName("없는메뉴")
	assert.False(t, ok)
	_, ok = c.FindByName("   ")
	assert.False(t, ok)
}

func TestCatalogMenusIsCopy(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	menus := c.Menus()
	menus[0].DisplayName = "changed"
	assert.Equal(t, "김치찌개", c.At(0).DisplayName)
}

func TestNewCatalogValidation(t *testing.T) {
	valid := Menu{
		ID: "a", CanonicalName: "a", DisplayName: "가", Cuisine: CuisineKorean, Base: BaseRice,
		Protein: ProteinPork, SpicyLevel: 0, HeavyLevel: 1, PriceRange: PriceLow,
	}

	_, err := NewCatalog(nil)
	assert.Error(t, err)

	dupID := valid
	dupID.DisplayName = "나"
	_, err = NewCatalog([]Menu{valid, dupID})
	assert.ErrorContains(t, err, "duplicate menu id")

	dupName := valid
	dupName.ID = "b"
	_, err = NewCatalog([]Menu{valid, dupName})
	assert.ErrorContains(t, err, "duplicate display name")

	bad := valid
	bad.SpicyLevel = 4
	_, err = NewCatalog([]Menu{bad})
	assert.Error(t, err)

	bad = valid
	bad.Cuisine = "martian"
	_, err = NewCatalog([]Menu{bad})
	assert.Error(t, err)
}

func TestLoadCatalogRejectsUnknownFields(t *testing.T) {
	doc := `menus:
  - {id: a, canonicalName: a, displayName: 가, cuisine: korean, base: rice, hasSoup: false, protein: pork, spicyLevel: 0, heavyLevel: 1, priceRange: low, calories: 100}
`
	_, err := LoadCatalog(strings.NewReader(doc))
	assert.Error(t, err)

	_, err = LoadCatalog(strings.NewReader(""))
	assert.Error(t, err)
}

func TestCatalogFingerprint(t *testing.T) {
	a, err := DefaultCatalog()
	require.NoError(t, err)
	b, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	menus := a.Menus()
	menus[0].Synonyms = append(menus[0].Synonyms, "김치찌개백반")
	c, err := NewCatalog(menus)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	tests := []struct {
		name   string
		modify func(m *Menu)
	}{
		{"cuisine", func(m *Menu) { m.Cuisine = CuisineOther }},
		{"base", func(m *Menu) { m.Base = BaseOther }},
		{"soup", func(m *Menu) { m.HasSoup = !m.HasSoup }},
		{"protein", func(m *Menu) { m.Protein = ProteinMixed }},
		{"spicy", func(m *Menu) { m.SpicyLevel = (m.SpicyLevel + 1) % 4 }},
		{"heavy", func(m *Menu) { m.HeavyLevel = m.HeavyLevel%3 + 1 }},
		{"price", func(m *Menu) {
			if m.PriceRange == PriceHigh {
				m.PriceRange = PriceLow
			} else {
				m.PriceRange = PriceHigh
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menus := a.Menus()
			tt.modify(&menus[0])
			changed, err := NewCatalog(menus)
			require.NoError(t, err)
			assert.NotEqual(t, a.Fingerprint(), changed.Fingerprint())
		})
	}
}

func TestPreferencesNormalizeAndLabels(t *testing.T) {
	p := UserPreferences{PreferredHeavyLevel: 2}.Normalize()
	assert.NotNil(t, p.PreferredCuisines)
	assert.NotNil(t, p.FavoriteMenuIDs)
	assert.Equal(t, GoalNone, p.FitnessGoal)

	soup := true
	d := DefaultPreferences()
	d.PreferSoup = &soup
	clone := d.Clone()
	*clone.PreferSoup = false
	assert.True(t, *d.PreferSoup)

	assert.Equal(t, "한식", CuisineKorean.Label())
	assert.Equal(t, "면", BaseNoodle.Label())
	assert.Equal(t, "채식", ProteinVegetarian.Label())
	assert.Equal(t, "저녁", MealDinner.Label())
	assert.Equal(t, "mystery", Cuisine("mystery").Label())

	mt, ok := ParseMealType("lunch")
	assert.True(t, ok)
	assert.Equal(t, MealLunch, mt)
	_, ok = ParseMealType("brunch")
	assert.False(t, ok)
}

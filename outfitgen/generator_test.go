package outfitgen

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, category Category, color string, tags ...string) Item {
	return Item{ID: id, Category: category, ClothingType: "T-Shirt", PrimaryColor: color, StyleTags: tags}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestGenerateEndToEnd(t *testing.T) {
	items := []Item{
		item("top", CategoryTop, "black", "casual"),
		item("bottom", CategoryBottom, "black", "casual"),
		item("shoes", CategoryShoes, "white", "casual"),
	}

	outfit, err := Generate(items, Params{Occasion: OccasionCasual, Weather: WeatherWarm})
	require.NoError(t, err)

	assert.Equal(t, []string{"top", "bottom", "shoes"}, ids(outfit.Items))
	assert.Equal(t, 87, outfit.Score)
	assert.Equal(t, SchemeNeutral, outfit.ColorScheme)
	assert.Equal(t, "casual", outfit.StyleTheme)
	assert.InDelta(t, 0.9, outfit.Breakdown.ColorHarmony, 1e-9)
	assert.InDelta(t, 1.0, outfit.Breakdown.StyleConsistency, 1e-9)
	assert.InDelta(t, 0.8, outfit.Breakdown.Completeness, 1e-9)
	assert.InDelta(t, 0.5, outfit.Breakdown.UserPreference, 1e-9)
	assert.Equal(t, 1, outfit.Candidates)
}

func TestGenerateIsDeterministic(t *testing.T) {
	items := []Item{
		item("t1", CategoryTop, "red", "casual"),
		item("t2", CategoryTop, "blue", "street"),
		item("b1", CategoryBottom, "green", "casual"),
		item("b2", CategoryBottom, "teal"),
		item("s1", CategoryShoes, "white", "sporty"),
		item("o1", CategoryOuterwear, "orange"),
	}
	params := Params{Occasion: OccasionCasual, Weather: WeatherCool}

	first, err := Generate(items, params)
	require.NoError(t, err)
	second, err := Generate(items, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	items := []Item{
		item("t1", CategoryTop, "Red", " Casual "),
		item("b1", CategoryBottom, "green", "casual"),
		item("s1", CategoryShoes, "white", "casual"),
	}
	before := make([]Item, len(items))
	for i, it := range items {
		before[i] = it
		before[i].StyleTags = slices.Clone(it.StyleTags)
	}

	outfit, err := Generate(items, Params{})
	require.NoError(t, err)
	assert.Equal(t, before, items)

	outfit.Items[0].StyleTags[0] = "changed"
	assert.Equal(t, " Casual ", items[0].StyleTags[0])
}

func TestGenerateHotWeatherDropsOuterwear(t *testing.T) {
	items := []Item{
		item("top", CategoryTop, "blue"),
		item("bottom", CategoryBottom, "blue"),
		item("shoes", CategoryShoes, "blue"),
		item("jacket", CategoryOuterwear, "blue"),
	}

	outfit, err := Generate(items, Params{Occasion: OccasionCasual, Weather: WeatherHot})
	require.NoError(t, err)
	assert.NotContains(t, ids(outfit.Items), "jacket")
	assert.Len(t, outfit.Items, 3)
}

func TestGenerateColdWeatherLayersOuterwear(t *testing.T) {
	items := []Item{
		item("sweater", CategoryTop, "blue", "casual"),
		item("jeans", CategoryBottom, "blue", "casual"),
		item("boots", CategoryShoes, "blue", "casual"),
		item("coat", CategoryOuterwear, "blue", "casual"),
	}

	outfit, err := Generate(items, Params{Occasion: OccasionCasual, Weather: WeatherCold})
	require.NoError(t, err)
	assert.Contains(t, ids(outfit.Items), "coat")
	assert.InDelta(t, 0.9, outfit.Breakdown.Completeness, 1e-9)
}

func TestGenerateInsufficientItems(t *testing.T) {
	items := []Item{
		item("top", CategoryTop, "blue"),
		item("bottom", CategoryBottom, "blue"),
	}

	_, err := Generate(items, Params{Occasion: OccasionCasual, Weather: WeatherWarm})
	require.ErrorIs(t, err, ErrInsufficientItems)

	_, err = Generate(nil, Params{})
	require.ErrorIs(t, err, ErrInsufficientItems)
}

func TestGenerateFiltersCanEmptyACategory(t *testing.T) {
	items := []Item{
		item("top", CategoryTop, "blue", "casual"),
		item("bottom", CategoryBottom, "blue", "casual"),
		item("shoes", CategoryShoes, "blue", "casual"),
	}

	_, err := Generate(items, Params{Occasion: OccasionFormal, Weather: WeatherWarm})
	require.ErrorIs(t, err, ErrInsufficientItems)
}

func TestGenerateDressFallback(t *testing.T) {
	dress := Item{ID: "dress", Category: CategoryTop, ClothingType: DressType}
	sandals := Item{ID: "sandals", Category: CategoryShoes, ClothingType: "Shoes"}

	outfit, err := Generate([]Item{dress, sandals}, Params{Occasion: OccasionDate, Weather: WeatherHot})
	require.NoError(t, err)
	assert.Equal(t, []string{"dress", "sandals"}, ids(outfit.Items))
	// 0.5*40 + 0.5*30 + 0.9*20 + 0.5*10
	assert.Equal(t, 58, outfit.Score)
	assert.Equal(t, SchemeNeutral, outfit.ColorScheme)
	assert.Equal(t, "casual", outfit.StyleTheme)
}

func TestGenerateDressFallbackTiesKeepLayeredFirst(t *testing.T) {
	items := []Item{
		{ID: "dress", Category: CategoryTop, ClothingType: DressType},
		{ID: "heels", Category: CategoryShoes},
		{ID: "cardigan", Category: CategoryOuterwear},
	}

	outfit, err := Generate(items, Params{Occasion: OccasionParty, Weather: WeatherWarm})
	require.NoError(t, err)
	assert.Equal(t, []string{"dress", "heels", "cardigan"}, ids(outfit.Items))
	assert.Equal(t, 2, outfit.Candidates)
}

func TestGenerateStylePreference(t *testing.T) {
	items := []Item{
		item("formal-shirt", CategoryTop, "white", "formal", "business"),
		item("casual-tee", CategoryTop, "white", "casual"),
		item("dress-pants", CategoryBottom, "black", "formal", "business"),
		item("dress-shoes", CategoryShoes, "black", "formal"),
	}

	outfit, err := Generate(items, Params{Occasion: OccasionWork, Weather: WeatherWarm, Style: "formal"})
	require.NoError(t, err)
	assert.Equal(t, []string{"formal-shirt", "dress-pants", "dress-shoes"}, ids(outfit.Items))
	assert.Equal(t, "formal", outfit.StyleTheme)
}

func TestGenerateConditionPrefersWaterproofLayers(t *testing.T) {
	items := []Item{
		{ID: "top", Category: CategoryTop},
		{ID: "bottom", Category: CategoryBottom},
		{ID: "shoes", Category: CategoryShoes},
		{ID: "blazer", Category: CategoryOuterwear},
		{ID: "trench", Category: CategoryOuterwear},
		{ID: "raincoat", Category: CategoryOuterwear, StyleTags: []string{"waterproof"}},
	}

	dry, err := Generate(items, Params{Weather: WeatherCool})
	require.NoError(t, err)
	assert.Equal(t, []string{"top", "bottom", "shoes", "blazer"}, ids(dry.Items))

	wet, err := Generate(items, Params{Weather: WeatherCool, Condition: ConditionRain})
	require.NoError(t, err)
	assert.Equal(t, []string{"top", "bottom", "shoes", "raincoat"}, ids(wet.Items))
}

func TestGenerateInvalidParameters(t *testing.T) {
	items := []Item{item("top", CategoryTop, "blue")}
	cases := []Params{
		{Occasion: "gala"},
		{Weather: "tropical"},
		{Style: "goth"},
		{Condition: "hail"},
	}
	for _, params := range cases {
		t.Run(fmt.Sprintf("%+v", params), func(t *testing.T) {
			_, err := Generate(items, params)
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	params, err := Normalize(Params{Style: " Formal ", Occasion: "WORK"})
	require.NoError(t, err)
	assert.Equal(t, OccasionWork, params.Occasion)
	assert.Equal(t, WeatherWarm, params.Weather)
	assert.Equal(t, "formal", params.Style)

	params, err = Normalize(Params{})
	require.NoError(t, err)
	assert.Equal(t, OccasionCasual, params.Occasion)
}

func TestGenerateTieBreaker(t *testing.T) {
	items := []Item{
		{ID: "t1", Category: CategoryTop},
		{ID: "t2", Category: CategoryTop},
		{ID: "t3", Category: CategoryTop},
		{ID: "b1", Category: CategoryBottom},
		{ID: "s1", Category: CategoryShoes},
	}

	outfit, err := Generate(items, Params{})
	require.NoError(t, err)
	assert.Equal(t, "t1", outfit.Items[0].ID)

	g := New(WithTieBreaker(rand.New(rand.NewSource(7))))
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		outfit, err := g.Generate(items, Params{})
		require.NoError(t, err)
		assert.Equal(t, 56, outfit.Score)
		seen[outfit.Items[0].ID] = true
	}
	for id := range seen {
		assert.Contains(t, []string{"t1", "t2", "t3"}, id)
	}
}

func TestGenerateRandomClosetsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	categories := []Category{CategoryTop, CategoryBottom, CategoryShoes, CategoryOuterwear, CategoryAccessory}
	colors := []string{"", "black", "white", "red", "green", "blue", "teal", "navy"}
	styles := Styles()
	occasions := []Occasion{OccasionCasual, OccasionWork, OccasionDate, OccasionWorkout, OccasionFormal, OccasionParty, OccasionTravel}
	weathers := []Weather{WeatherHot, WeatherWarm, WeatherCool, WeatherCold}

	for run := 0; run < 200; run++ {
		var items []Item
		n := r.Intn(25)
		for i := 0; i < n; i++ {
			it := Item{
				ID:       fmt.Sprintf("%d-%d", run, i),
				Category: categories[r.Intn(len(categories))],
				Color:    colors[r.Intn(len(colors))],
			}
			if r.Intn(6) == 0 {
				it.ClothingType = DressType
			}
			tagCount := r.Intn(3)
			for j := 0; j < tagCount; j++ {
				it.StyleTags = append(it.StyleTags, styles[r.Intn(len(styles))])
			}
			items = append(items, it)
		}
		params := Params{Occasion: occasions[r.Intn(len(occasions))], Weather: weathers[r.Intn(len(weathers))]}

		outfit, err := Generate(items, params)
		if err != nil {
			require.ErrorIs(t, err, ErrInsufficientItems)
			continue
		}
		require.GreaterOrEqual(t, outfit.Score, 0)
		require.LessOrEqual(t, outfit.Score, 100)
		require.LessOrEqual(t, outfit.Candidates, maxCombinations)

		var present []Category
		hasDress := false
		for _, it := range outfit.Items {
			present = append(present, it.Category)
			hasDress = hasDress || (it.ClothingType == DressType && it.Category == CategoryTop)
		}
		complete := slices.Contains(present, CategoryTop) && slices.Contains(present, CategoryBottom) && slices.Contains(present, CategoryShoes)
		require.True(t, complete || (hasDress && slices.Contains(present, CategoryShoes)), "outfit %v is incomplete", ids(outfit.Items))
	}
}

func TestPreferredTypes(t *testing.T) {
	hot := PreferredTypes(WeatherHot)
	assert.Contains(t, hot, "Dress")
	hot[0] = "changed"
	assert.Equal(t, "T-Shirt", PreferredTypes(WeatherHot)[0])
	assert.Empty(t, PreferredTypes("unknown"))
}

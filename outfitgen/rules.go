package outfitgen

import "slices"

// styleMatrix lists, for each style, the styles it goes with. It is not
// symmetric ("business" accepts "casual" but not the other way round) and
// must stay that way.
var styleMatrix = map[string][]string{
	"casual":     {"casual", "sporty", "street"},
	"formal":     {"formal", "business"},
	"sporty":     {"sporty", "casual", "street"},
	"business":   {"business", "formal", "casual"},
	"street":     {"street", "casual", "sporty"},
	"boho":       {"boho", "casual"},
	"vintage":    {"vintage", "casual"},
	"minimalist": {"minimalist", "formal", "business", "casual"},
	"preppy":     {"preppy", "business", "casual"},
	"edgy":       {"edgy", "street", "casual"},
}

type weatherRule struct {
	avoid []Category
	// require is recorded for parity with the band definitions; nothing
	// enforces it.
	require []Category
	prefer  []string
}

var weatherRules = map[Weather]weatherRule{
	WeatherHot: {
		avoid:  []Category{CategoryOuterwear},
		prefer: []string{"T-Shirt", "Shorts", "Dress"},
	},
	WeatherWarm: {
		prefer: []string{"Shirt", "Pants", "T-Shirt"},
	},
	WeatherCool: {
		require: []Category{CategoryOuterwear},
		prefer:  []string{"Longsleeve", "Pants", "Blazer", "Hoodie"},
	},
	WeatherCold: {
		require: []Category{CategoryOuterwear},
		prefer:  []string{"Longsleeve", "Pants", "Outwear"},
	},
}

type occasionRule struct {
	styles []string
	avoid  []string
	// prefer is informational only.
	prefer []string
}

var occasionRules = map[Occasion]occasionRule{
	OccasionWork: {
		styles: []string{"formal", "business"},
		avoid:  []string{"sporty", "street"},
		prefer: []string{"Blazer", "Shirt", "Pants", "Blouse"},
	},
	OccasionCasual: {
		styles: []string{"casual"},
		avoid:  []string{"formal"},
		prefer: []string{"T-Shirt", "Pants", "Shorts"},
	},
	OccasionWorkout: {
		styles: []string{"sporty"},
		prefer: []string{"T-Shirt", "Shorts"},
	},
	OccasionFormal: {
		styles: []string{"formal"},
		avoid:  []string{"casual", "sporty"},
		prefer: []string{"Blazer", "Shirt", "Pants", "Dress"},
	},
	OccasionDate: {
		styles: []string{"formal", "business", "casual"},
		prefer: []string{"Dress", "Shirt", "Blouse", "Skirt"},
	},
	OccasionParty: {
		styles: []string{"formal", "casual", "street"},
		prefer: []string{"Dress", "Shirt", "Skirt"},
	},
	OccasionTravel: {},
}

var requiredCategories = []Category{CategoryTop, CategoryBottom, CategoryShoes}

var conditions = []Condition{
	ConditionClear, ConditionClouds, ConditionRain, ConditionSnow,
	ConditionThunderstorm, ConditionDrizzle, ConditionMist,
}

// PreferredTypes returns the clothing subtypes that suit a weather band.
// It is a hint for callers; generation never filters on it.
func PreferredTypes(w Weather) []string {
	return slices.Clone(weatherRules[w].prefer)
}

// Styles returns the known style labels in a stable order.
func Styles() []string {
	out := make([]string, 0, len(styleMatrix))
	for style := range styleMatrix {
		out = append(out, style)
	}
	slices.Sort(out)
	return out
}

func ValidOccasion(o Occasion) bool {
	_, ok := occasionRules[o]
	return ok
}

func ValidWeather(w Weather) bool {
	_, ok := weatherRules[w]
	return ok
}

func ValidStyle(style string) bool {
	_, ok := styleMatrix[style]
	return ok
}

func ValidCondition(c Condition) bool {
	return c == ConditionNone || slices.Contains(conditions, c)
}

// stylesCompatible reports whether b is acceptable next to a, reading a's row.
func stylesCompatible(a, b string) bool {
	return a == b || slices.Contains(styleMatrix[a], b)
}

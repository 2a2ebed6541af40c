// Package outfitgen picks the best outfit out of a closet.
//
// Generation is a single synchronous pass: weather filter, style/occasion
// filter, combination enumeration, scoring and selection. Nothing here does
// I/O or keeps state between calls, so a Generator may be shared freely.
package outfitgen

type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

type Occasion string

const (
	OccasionCasual  Occasion = "casual"
	OccasionWork    Occasion = "work"
	OccasionDate    Occasion = "date"
	OccasionWorkout Occasion = "workout"
	OccasionFormal  Occasion = "formal"
	OccasionParty   Occasion = "party"
	OccasionTravel  Occasion = "travel"
)

// Weather is a temperature band, not a raw reading.
type Weather string

const (
	WeatherHot  Weather = "hot"
	WeatherWarm Weather = "warm"
	WeatherCool Weather = "cool"
	WeatherCold Weather = "cold"
)

// Condition is the optional precipitation/sky condition.
type Condition string

const (
	ConditionNone         Condition = ""
	ConditionClear        Condition = "clear"
	ConditionClouds       Condition = "clouds"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionDrizzle      Condition = "drizzle"
	ConditionMist         Condition = "mist"
)

type ColorScheme string

const (
	SchemeMonochromatic ColorScheme = "monochromatic"
	SchemeNeutral       ColorScheme = "neutral"
	SchemeComplementary ColorScheme = "complementary"
	SchemeAnalogous     ColorScheme = "analogous"
	SchemeMixed         ColorScheme = "mixed"
)

// DressType is the clothing subtype that can stand in for top + bottom.
const DressType = "Dress"

// Item is one closet piece as handed over by the closet listing.
// PrimaryColor wins over Color when both are set.
type Item struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	ClothingType string   `json:"clothing_type"`
	PrimaryColor string   `json:"primary_color,omitempty"`
	Color        string   `json:"color,omitempty"`
	StyleTags    []string `json:"style_tags"`
}

type Params struct {
	Occasion  Occasion  `json:"occasion"`
	Weather   Weather   `json:"weather"`
	Style     string    `json:"style,omitempty"`
	Condition Condition `json:"condition,omitempty"`
}

// Breakdown holds the normalised sub-scores, each in [0,1].
type Breakdown struct {
	ColorHarmony     float64 `json:"color_harmony"`
	StyleConsistency float64 `json:"style_consistency"`
	Completeness     float64 `json:"completeness"`
	UserPreference   float64 `json:"user_preference"`
}

type Outfit struct {
	Items       []Item      `json:"items"`
	Score       int         `json:"score"`
	ColorScheme ColorScheme `json:"color_scheme"`
	StyleTheme  string      `json:"style_theme"`
	Occasion    Occasion    `json:"occasion"`
	Weather     Weather     `json:"weather"`
	Breakdown   Breakdown   `json:"breakdown"`
	Candidates  int         `json:"candidates"`
}

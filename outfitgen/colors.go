package outfitgen

import "slices"

var neutralColors = []string{"black", "white", "gray", "grey", "beige", "brown"}

var complementaryColors = map[string]string{
	"red":    "green",
	"green":  "red",
	"blue":   "orange",
	"orange": "blue",
	"yellow": "purple",
	"purple": "yellow",
	"pink":   "green",
	"teal":   "red",
}

var analogousColors = map[string][]string{
	"red":    {"orange", "pink"},
	"orange": {"red", "yellow"},
	"yellow": {"orange", "green"},
	"green":  {"yellow", "teal"},
	"blue":   {"teal", "purple"},
	"purple": {"blue", "pink"},
	"pink":   {"purple", "red"},
	"teal":   {"green", "blue"},
}

func isNeutral(color string) bool {
	return slices.Contains(neutralColors, color)
}

func allNeutral(colors []string) bool {
	for _, c := range colors {
		if !isNeutral(c) {
			return false
		}
	}
	return true
}

func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// hasComplementaryPair checks whether the complement of the first color shows
// up among the rest. Colors without a complement never match.
func hasComplementaryPair(colors []string) bool {
	if len(colors) < 2 {
		return false
	}
	complement, ok := complementaryColors[colors[0]]
	if !ok {
		return false
	}
	return slices.Contains(colors[1:], complement)
}

func hasAnalogousPair(colors []string) bool {
	if len(colors) == 0 {
		return false
	}
	neighbours := analogousColors[colors[0]]
	for _, c := range colors {
		if slices.Contains(neighbours, c) {
			return true
		}
	}
	return false
}

// colorsOf collects the resolved color of every piece that has one.
func colorsOf(pieces []piece) []string {
	colors := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p.color != "" {
			colors = append(colors, p.color)
		}
	}
	return colors
}

func colorHarmony(pieces []piece) float64 {
	colors := colorsOf(pieces)
	switch {
	case len(colors) == 0:
		return 0.5
	case len(uniqueStrings(colors)) == 1:
		return 1.0
	case allNeutral(colors):
		return 0.9
	case hasComplementaryPair(colors):
		return 0.85
	case hasAnalogousPair(colors):
		return 0.8
	}
	return 0.6
}

// detectColorScheme labels the winning outfit. An outfit with no colors at
// all counts as neutral.
func detectColorScheme(pieces []piece) ColorScheme {
	colors := colorsOf(pieces)
	switch {
	case len(uniqueStrings(colors)) == 1:
		return SchemeMonochromatic
	case allNeutral(colors):
		return SchemeNeutral
	case hasComplementaryPair(colors):
		return SchemeComplementary
	case len(colors) >= 2 && hasAnalogousPair(colors):
		return SchemeAnalogous
	}
	return SchemeMixed
}

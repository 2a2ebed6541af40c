package outfitgen

import "slices"

const (
	colorHarmonyWeight     = 40
	styleConsistencyWeight = 30
	completenessWeight     = 20
	userPreferenceWeight   = 10
)

func flattenTags(pieces []piece) []string {
	var tags []string
	for _, p := range pieces {
		tags = append(tags, p.tags...)
	}
	return tags
}

// styleConsistency needs every pair of distinct tags to accept each other
// through the compatibility table, in both directions.
func styleConsistency(pieces []piece) float64 {
	tags := flattenTags(pieces)
	if len(tags) == 0 {
		return 0.5
	}
	unique := uniqueStrings(tags)
	if len(unique) == 1 {
		return 1.0
	}
	for _, a := range unique {
		for _, b := range unique {
			if !stylesCompatible(a, b) {
				return 0.5
			}
		}
	}
	return 0.8
}

func completeness(pieces []piece) float64 {
	var present []Category
	hasDress := false
	for _, p := range pieces {
		present = append(present, p.item.Category)
		if p.isDress() {
			hasDress = true
		}
	}
	for _, required := range requiredCategories {
		if !slices.Contains(present, required) {
			if hasDress && slices.Contains(present, CategoryShoes) {
				return 0.9
			}
			return 0.3
		}
	}
	hasOuterwear := slices.Contains(present, CategoryOuterwear)
	hasAccessory := slices.Contains(present, CategoryAccessory)
	switch {
	case hasOuterwear && hasAccessory:
		return 1.0
	case hasOuterwear || hasAccessory:
		return 0.9
	}
	return 0.8
}

// userPreference is held at a neutral 0.5 until wear history and ratings
// feed into generation. The term stays in the total so the 0-100 scale does
// not shift when it lands.
func userPreference([]piece) float64 {
	return 0.5
}

func breakdown(pieces []piece) Breakdown {
	return Breakdown{
		ColorHarmony:     colorHarmony(pieces),
		StyleConsistency: styleConsistency(pieces),
		Completeness:     completeness(pieces),
		UserPreference:   userPreference(pieces),
	}
}

// Total is the weighted 0-100 score for the breakdown.
func (b Breakdown) Total() float64 {
	total := b.ColorHarmony*colorHarmonyWeight +
		b.StyleConsistency*styleConsistencyWeight +
		b.Completeness*completenessWeight +
		b.UserPreference*userPreferenceWeight
	return min(100, max(0, total))
}

// detectStyleTheme returns the most frequent tag, earliest seen on ties.
func detectStyleTheme(pieces []piece) string {
	tags := flattenTags(pieces)
	if len(tags) == 0 {
		return "casual"
	}
	order := uniqueStrings(tags)
	counts := make(map[string]int, len(order))
	for _, t := range tags {
		counts[t]++
	}
	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

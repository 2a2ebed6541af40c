package outfitgen

import (
	"slices"
	"sort"
)

var waterproofTags = []string{"waterproof", "rain"}

func needsWaterproof(c Condition) bool {
	switch c {
	case ConditionRain, ConditionDrizzle, ConditionSnow, ConditionThunderstorm:
		return true
	}
	return false
}

// conditionWeights maps item id to a weather weight. Only wet conditions
// produce entries; a missing entry weighs 1.
func conditionWeights(pieces []piece, c Condition) map[string]float64 {
	weights := make(map[string]float64)
	if !needsWaterproof(c) {
		return weights
	}
	for _, p := range pieces {
		switch {
		case sharesAny(p.tags, waterproofTags):
			weights[p.item.ID] = 1.5
		case p.item.Category == CategoryOuterwear:
			weights[p.item.ID] = 0.5
		}
	}
	return weights
}

func weightOf(weights map[string]float64, id string) float64 {
	if w, ok := weights[id]; ok {
		return w
	}
	return 1
}

// prioritize returns a copy of pieces ordered by descending weight, keeping
// input order among equal weights.
func prioritize(pieces []piece, weights map[string]float64) []piece {
	out := slices.Clone(pieces)
	if len(weights) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return weightOf(weights, out[i].item.ID) > weightOf(weights, out[j].item.ID)
	})
	return out
}

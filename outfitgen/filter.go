package outfitgen

import (
	"slices"
	"strings"
)

// piece is an Item with its optional fields resolved once on the way in.
type piece struct {
	item  Item
	color string
	tags  []string
}

func (p piece) isDress() bool {
	return p.item.ClothingType == DressType
}

func resolve(items []Item) []piece {
	pieces := make([]piece, 0, len(items))
	for _, it := range items {
		color := strings.ToLower(strings.TrimSpace(it.PrimaryColor))
		if color == "" {
			color = strings.ToLower(strings.TrimSpace(it.Color))
		}
		tags := make([]string, 0, len(it.StyleTags))
		for _, t := range it.StyleTags {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				tags = append(tags, t)
			}
		}
		pieces = append(pieces, piece{item: it, color: color, tags: tags})
	}
	return pieces
}

// filterByWeather drops whole categories the band rules out. Preferred
// subtypes are not consulted.
func filterByWeather(pieces []piece, w Weather) []piece {
	avoid := weatherRules[w].avoid
	out := make([]piece, 0, len(pieces))
	for _, p := range pieces {
		if slices.Contains(avoid, p.item.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// filterByStyle keeps a piece only if it clears both the explicit style gate
// and the occasion avoid list. Untagged pieces always clear the style gate.
func filterByStyle(pieces []piece, occasion Occasion, style string) []piece {
	avoid := occasionRules[occasion].avoid
	out := make([]piece, 0, len(pieces))
	for _, p := range pieces {
		if style != "" && len(p.tags) > 0 && !sharesAny(p.tags, styleMatrix[style]) {
			continue
		}
		if sharesAny(p.tags, avoid) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sharesAny(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

package outfitgen

const (
	maxTops            = 5
	maxBottoms         = 5
	maxShoes           = 3
	maxOuterwearLayers = 2
	maxCombinations    = 100
)

type buckets struct {
	tops, bottoms, shoes, outerwear, accessories []piece
}

func bucketize(pieces []piece) buckets {
	var b buckets
	for _, p := range pieces {
		switch p.item.Category {
		case CategoryTop:
			b.tops = append(b.tops, p)
		case CategoryBottom:
			b.bottoms = append(b.bottoms, p)
		case CategoryShoes:
			b.shoes = append(b.shoes, p)
		case CategoryOuterwear:
			b.outerwear = append(b.outerwear, p)
		case CategoryAccessory:
			b.accessories = append(b.accessories, p)
		}
	}
	return b
}

func firstN(pieces []piece, n int) []piece {
	if len(pieces) > n {
		return pieces[:n]
	}
	return pieces
}

// enumerate builds candidate outfits. Each base combination is preceded by
// its layered variants (base + one of the first two outerwear pieces). The
// loops always run to completion and the result is cut at maxCombinations.
func enumerate(pieces []piece) [][]piece {
	b := bucketize(pieces)
	layers := firstN(b.outerwear, maxOuterwearLayers)
	var combos [][]piece

	emit := func(base ...piece) {
		for _, layer := range layers {
			layered := make([]piece, 0, len(base)+1)
			layered = append(layered, base...)
			combos = append(combos, append(layered, layer))
		}
		combos = append(combos, base)
	}

	if len(b.tops) > 0 && len(b.bottoms) > 0 && len(b.shoes) > 0 {
		for _, top := range firstN(b.tops, maxTops) {
			for _, bottom := range firstN(b.bottoms, maxBottoms) {
				for _, shoes := range firstN(b.shoes, maxShoes) {
					emit(top, bottom, shoes)
				}
			}
		}
	} else {
		for _, dress := range b.tops {
			if !dress.isDress() {
				continue
			}
			for _, shoes := range b.shoes {
				emit(dress, shoes)
			}
		}
	}

	if len(combos) > maxCombinations {
		combos = combos[:maxCombinations]
	}
	return combos
}

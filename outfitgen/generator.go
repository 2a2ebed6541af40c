package outfitgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sort"
	"strings"
	"sync"
)

var (
	ErrInsufficientItems = errors.New("not enough items to generate an outfit, add more items to your closet")
	ErrInvalidParameter  = errors.New("invalid generation parameter")
)

type Generator struct {
	mu         sync.Mutex
	tieBreaker *rand.Rand
}

type Option func(*Generator)

// WithTieBreaker picks randomly among candidates sharing the best score
// instead of taking the first one enumerated.
func WithTieBreaker(r *rand.Rand) Option {
	return func(g *Generator) {
		g.tieBreaker = r
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the default deterministic generator.
func Generate(items []Item, params Params) (Outfit, error) {
	return New().Generate(items, params)
}

// Normalize applies defaults and validates params.
func Normalize(params Params) (Params, error) {
	params.Occasion = Occasion(strings.ToLower(strings.TrimSpace(string(params.Occasion))))
	params.Weather = Weather(strings.ToLower(strings.TrimSpace(string(params.Weather))))
	params.Style = strings.ToLower(strings.TrimSpace(params.Style))
	params.Condition = Condition(strings.ToLower(strings.TrimSpace(string(params.Condition))))

	if params.Occasion == "" {
		params.Occasion = OccasionCasual
	}
	if params.Weather == "" {
		params.Weather = WeatherWarm
	}
	if !ValidOccasion(params.Occasion) {
		return params, fmt.Errorf("%w: unknown occasion %q", ErrInvalidParameter, params.Occasion)
	}
	if !ValidWeather(params.Weather) {
		return params, fmt.Errorf("%w: unknown weather %q", ErrInvalidParameter, params.Weather)
	}
	if params.Style != "" && !ValidStyle(params.Style) {
		return params, fmt.Errorf("%w: unknown style %q", ErrInvalidParameter, params.Style)
	}
	if !ValidCondition(params.Condition) {
		return params, fmt.Errorf("%w: unknown condition %q", ErrInvalidParameter, params.Condition)
	}
	return params, nil
}

type scored struct {
	pieces    []piece
	breakdown Breakdown
	total     float64
}

// Generate returns the best scoring outfit for items. items is never
// modified; the returned outfit holds copies.
func (g *Generator) Generate(items []Item, params Params) (Outfit, error) {
	params, err := Normalize(params)
	if err != nil {
		return Outfit{}, err
	}

	pool := resolve(items)
	pool = filterByWeather(pool, params.Weather)
	pool = filterByStyle(pool, params.Occasion, params.Style)
	pool = prioritize(pool, conditionWeights(pool, params.Condition))

	combos := enumerate(pool)
	if len(combos) == 0 {
		return Outfit{}, ErrInsufficientItems
	}

	ranked := make([]scored, 0, len(combos))
	for _, combo := range combos {
		b := breakdown(combo)
		ranked = append(ranked, scored{pieces: combo, breakdown: b, total: b.Total()})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})
	best := g.pick(ranked)

	theme := params.Style
	if theme == "" {
		theme = detectStyleTheme(best.pieces)
	}
	return Outfit{
		Items:       cloneItems(best.pieces),
		Score:       int(math.Round(best.total)),
		ColorScheme: detectColorScheme(best.pieces),
		StyleTheme:  theme,
		Occasion:    params.Occasion,
		Weather:     params.Weather,
		Breakdown:   best.breakdown,
		Candidates:  len(combos),
	}, nil
}

func (g *Generator) pick(ranked []scored) scored {
	if g.tieBreaker == nil {
		return ranked[0]
	}
	tied := 1
	for tied < len(ranked) && ranked[tied].total == ranked[0].total {
		tied++
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return ranked[g.tieBreaker.Intn(tied)]
}

func cloneItems(pieces []piece) []Item {
	items := make([]Item, 0, len(pieces))
	for _, p := range pieces {
		it := p.item
		it.StyleTags = slices.Clone(it.StyleTags)
		items = append(items, it)
	}
	return items
}

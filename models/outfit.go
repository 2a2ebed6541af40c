package models

import "github.com/lib/pq"

const (
	OutfitSourceAPI   = "api"
	OutfitSourceAsync = "async"
	OutfitSourceDaily = "daily"
)

// GeneratedOutfit is one generation result as stored in the history.
type GeneratedOutfit struct {
	JsonModel
	GenerationID     string         `gorm:"uniqueIndex" json:"generation_id"`
	UserAccountID    uint           `gorm:"index" json:"-"`
	UserAccount      UserAccount    `json:"-"`
	ItemIDs          pq.StringArray `gorm:"type:text[]" json:"item_ids"`
	Occasion         string         `json:"occasion"`
	WeatherCondition string         `json:"weather_condition"`
	Condition        *string        `json:"condition"`
	Style            *string        `json:"style"`
	ColorScheme      string         `json:"color_scheme"`
	StyleTheme       string         `json:"style_theme"`
	AIScore          int            `json:"ai_score"`
	Candidates       int            `json:"candidates"`
	Source           string         `json:"source"` // api, async, daily
	Rating           *int           `json:"rating"`
}

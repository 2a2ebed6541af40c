package models

import (
	"time"

	"github.com/lib/pq"
)

type Clothing struct {
	JsonModel
	Name        string  `json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	// top, bottom, outerwear, shoes, accessory
	Category string `gorm:"index" json:"category"`
	// subtype inside the category, e.g. Dress, Jeans, Sneakers
	ClothingType string         `json:"clothing_type"`
	PrimaryColor *string        `json:"primary_color"`
	Color        *string        `json:"color"`
	StyleTags    pq.StringArray `gorm:"type:text[]" json:"style_tags"`
	Owner        UserAccount    `json:"-"`
	OwnerID      uint           `gorm:"index" json:"-"`
	Status       string         `json:"status"` // temporary, in_closet
	ImageURL     *string        `json:"image_url"`
	// soft removal, removed items never reach generation
	RemovedAt *time.Time `json:"-"`
}

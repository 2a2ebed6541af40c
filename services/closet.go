package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"stylesnapapi/models"
	"stylesnapapi/outfitgen"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

var ErrClothingNotFound = errors.New("clothing not found")

type ClosetProvider interface {
	// ListItems returns the user's non-removed clothes in insertion order.
	ListItems(ctx context.Context, userID uint) ([]models.Clothing, error)
	AddItem(ctx context.Context, clothing *models.Clothing) error
	// RemoveItem hides the item from listing and generation; history keeps its id.
	RemoveItem(ctx context.Context, userID, clothingID uint) error
}

type ClosetService struct {
	DB *gorm.DB
}

func (s *ClosetService) AddItem(ctx context.Context, clothing *models.Clothing) error {
	return s.DB.WithContext(ctx).Create(clothing).Error
}

func (s *ClosetService) RemoveItem(ctx context.Context, userID, clothingID uint) error {
	result := s.DB.WithContext(ctx).
		Model(&models.Clothing{}).
		Where("id = ? AND owner_id = ? AND removed_at IS NULL", clothingID, userID).
		Update("removed_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClothingNotFound
	}
	return nil
}

func (s *ClosetService) ListItems(ctx context.Context, userID uint) ([]models.Clothing, error) {
	var clothes []models.Clothing
	err := s.DB.WithContext(ctx).
		Where("owner_id = ? AND removed_at IS NULL", userID).
		Order("id").
		Find(&clothes).Error
	if err != nil {
		return nil, err
	}
	return clothes, nil
}

// NormalizeClothingType title-cases a subtype so "dress" and "DRESS" both
// reach the generator as "Dress".
func NormalizeClothingType(clothingType string) string {
	clothingType = strings.TrimSpace(clothingType)
	if clothingType == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(clothingType))
}

func ClothingItemID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ToGeneratorItems converts stored clothes into generator items, keeping order.
func ToGeneratorItems(clothes []models.Clothing) []outfitgen.Item {
	items := make([]outfitgen.Item, 0, len(clothes))
	for _, clothing := range clothes {
		items = append(items, outfitgen.Item{
			ID:           ClothingItemID(clothing.ID),
			Category:     outfitgen.Category(strings.ToLower(strings.TrimSpace(clothing.Category))),
			ClothingType: NormalizeClothingType(clothing.ClothingType),
			PrimaryColor: StrValue(clothing.PrimaryColor),
			Color:        StrValue(clothing.Color),
			StyleTags:    []string(clothing.StyleTags),
		})
	}
	return items
}

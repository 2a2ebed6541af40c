package services

import (
	"context"
	"errors"

	"stylesnapapi/models"

	"gorm.io/gorm"
)

var ErrOutfitNotFound = errors.New("outfit not found")

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// HistoryFilter narrows a history listing. Zero fields do not filter.
type HistoryFilter struct {
	Source    string
	Occasion  string
	MinRating int
	Limit     int
}

// Matches reports whether a stored outfit passes the filter, limit aside.
func (f HistoryFilter) Matches(outfit models.GeneratedOutfit) bool {
	if f.Source != "" && outfit.Source != f.Source {
		return false
	}
	if f.Occasion != "" && outfit.Occasion != f.Occasion {
		return false
	}
	if f.MinRating > 0 && (outfit.Rating == nil || *outfit.Rating < f.MinRating) {
		return false
	}
	return true
}

type OutfitHistoryProvider interface {
	Record(ctx context.Context, outfit *models.GeneratedOutfit) error
	// List returns the user's outfits newest first.
	List(ctx context.Context, userID uint, filter HistoryFilter) ([]models.GeneratedOutfit, error)
	Rate(ctx context.Context, userID, outfitID uint, rating int) (*models.GeneratedOutfit, error)
}

type OutfitHistoryService struct {
	DB *gorm.DB
}

func (s *OutfitHistoryService) Record(ctx context.Context, outfit *models.GeneratedOutfit) error {
	return s.DB.WithContext(ctx).Create(outfit).Error
}

// ClampHistoryLimit applies the default for non-positive limits and caps the rest.
func ClampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return min(limit, MaxHistoryLimit)
}

func (s *OutfitHistoryService) List(ctx context.Context, userID uint, filter HistoryFilter) ([]models.GeneratedOutfit, error) {
	query := s.DB.WithContext(ctx).Where("user_account_id = ?", userID)
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	if filter.Occasion != "" {
		query = query.Where("occasion = ?", filter.Occasion)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	var outfits []models.GeneratedOutfit
	err := query.
		Order("created_at DESC, id DESC").
		Limit(ClampHistoryLimit(filter.Limit)).
		Find(&outfits).Error
	return outfits, err
}

func (s *OutfitHistoryService) Rate(ctx context.Context, userID, outfitID uint, rating int) (*models.GeneratedOutfit, error) {
	var outfit models.GeneratedOutfit
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_account_id = ?", outfitID, userID).
		Take(&outfit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOutfitNotFound
	}
	if err != nil {
		return nil, err
	}
	outfit.Rating = &rating
	if err := s.DB.WithContext(ctx).Model(&outfit).Update("rating", rating).Error; err != nil {
		return nil, err
	}
	return &outfit, nil
}

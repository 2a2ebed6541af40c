package services

import (
	"context"
	"errors"
	"strings"

	"stylesnapapi/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserProvider interface {
	GetUser(ctx context.Context, userID uint) (*models.UserAccount, error)
	UpdateSettings(ctx context.Context, userID uint, in models.UserSettingsIn) (*models.UserAccount, error)
	// DailyOutfitUsers returns users that opted in to the daily outfit.
	DailyOutfitUsers(ctx context.Context) ([]models.UserAccount, error)
}

type UserService struct {
	DB *gorm.DB
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.UserAccount, error) {
	var user models.UserAccount
	err := s.DB.WithContext(ctx).Where("id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SettingValue normalises a stored default; blank values become nil.
func SettingValue(value *string) *string {
	if value == nil {
		return nil
	}
	return StrPointer(strings.ToLower(strings.TrimSpace(*value)))
}

func (s *UserService) UpdateSettings(ctx context.Context, userID uint, in models.UserSettingsIn) (*models.UserAccount, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.ReceiveDailyOutfit != nil {
		user.ReceiveDailyOutfit = *in.ReceiveDailyOutfit
	}
	if in.DefaultOccasion != nil {
		user.DefaultOccasion = SettingValue(in.DefaultOccasion)
	}
	if in.DefaultWeather != nil {
		user.DefaultWeather = SettingValue(in.DefaultWeather)
	}
	if in.DefaultStyle != nil {
		user.DefaultStyle = SettingValue(in.DefaultStyle)
	}
	err = s.DB.WithContext(ctx).Model(user).Select(
		"ReceiveDailyOutfit", "DefaultOccasion", "DefaultWeather", "DefaultStyle",
	).Updates(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DailyOutfitUsers(ctx context.Context) ([]models.UserAccount, error) {
	var users []models.UserAccount
	err := s.DB.WithContext(ctx).
		Where("receive_daily_outfit = ? AND banned = ?", true, false).
		Order("id").
		Find(&users).Error
	return users, err
}

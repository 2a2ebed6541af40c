package models

type UserAccount struct {
	JsonModel
	Name   string `json:"name"`
	Email  string `json:"email" gorm:"unique"`
	Banned bool   `gorm:"default:false" json:"-"`

	// daily outfit settings
	ReceiveDailyOutfit bool    `gorm:"default:false" json:"receive_daily_outfit"`
	DefaultOccasion    *string `json:"default_occasion"`
	DefaultWeather     *string `json:"default_weather"`
	DefaultStyle       *string `json:"default_style"`

	Clothes []Clothing `gorm:"foreignKey:OwnerID" json:"-"`
}

// UserSettingsIn is a partial update. A nil field is left alone, an empty
// string clears the stored default.
type UserSettingsIn struct {
	ReceiveDailyOutfit *bool   `json:"receive_daily_outfit"`
	DefaultOccasion    *string `json:"default_occasion" validate:"omitempty,default_occasion"`
	DefaultWeather     *string `json:"default_weather" validate:"omitempty,default_weather"`
	DefaultStyle       *string `json:"default_style" validate:"omitempty,default_style"`
}

type UserInfoOut struct {
	Id                 uint    `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	ReceiveDailyOutfit bool    `json:"receive_daily_outfit"`
	DefaultOccasion    *string `json:"default_occasion"`
	DefaultWeather     *string `json:"default_weather"`
	DefaultStyle       *string `json:"default_style"`
}

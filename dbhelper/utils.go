package dbhelper

import (
	"stylesnapapi/models"

	"gorm.io/gorm"
)

func SetupCleaner(db *gorm.DB) func() {
	return func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.GeneratedOutfit{})
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Clothing{})
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.UserAccount{})
	}
}

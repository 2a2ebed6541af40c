package dbhelper

import (
	"fmt"
	"os"
	"time"

	"stylesnapapi/models"
	"stylesnapapi/services"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dsn() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		services.GetEnv("DB_USERNAME", ""),
		services.GetEnv("DB_PASSWORD", ""),
		services.GetEnv("DB_HOST", ""),
		services.GetEnv("DB_PORT", "5432"),
		services.GetEnv("DB_NAME", ""),
	)
}

// OpenDB connects and migrates, returning the error instead of panicking.
func OpenDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(300)
	sqlDB.SetConnMaxLifetime(time.Minute * 5)

	for _, model := range []interface{}{
		&models.UserAccount{},
		&models.Clothing{},
		&models.GeneratedOutfit{},
	} {
		if err := db.AutoMigrate(model); err != nil {
			return nil, fmt.Errorf("migrating %T: %w", model, err)
		}
	}
	return db, nil
}

func SetupDB() *gorm.DB {
	db, err := OpenDB()
	if err != nil {
		panic(err)
	}
	return db
}

func setTestEnv() {
	os.Setenv("DB_USERNAME", services.GetEnv("TEST_DB_USERNAME", "stylesnap"))
	os.Setenv("DB_PASSWORD", services.GetEnv("TEST_DB_PASSWORD", "stylesnap"))
	os.Setenv("DB_HOST", services.GetEnv("TEST_DB_HOST", "localhost"))
	os.Setenv("DB_NAME", services.GetEnv("TEST_DB_NAME", "stylesnap"))
	os.Setenv("DB_PORT", services.GetEnv("TEST_DB_PORT", "5432"))
}

// OpenTestDB connects to the TEST_DB_* database; callers decide whether a
// failure skips or fails.
func OpenTestDB() (*gorm.DB, error) {
	setTestEnv()
	return OpenDB()
}

package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"intervue_backend/internal/config"
	"intervue_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the DSN from config.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey (the reminder dedup insert relies on this).
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate runs schema migration for all models.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Interview{},
		&models.InterviewRating{},
		&models.ReminderLog{},
	)
}

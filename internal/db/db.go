package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/config"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config, logger zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.SalonHours{},
		&models.Booking{},
		&models.GalleryImage{},
		&models.ContactMessage{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}

package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/config"
	"github.com/hredostate/upss-webly/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из конфигурации
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	// TranslateError: нарушения уникальных индексов приходят как
	// gorm.ErrDuplicatedKey, сервисы переводят их в доменные конфликты
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	// Расширение для uuid_generate_v4
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Page{},
		&models.Section{},
		&models.News{},
		&models.JobListing{},
		&models.JobApplication{},
		&models.ApplicationStatusHistory{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

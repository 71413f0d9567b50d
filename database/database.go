package database

import (
	"fmt"
	"log"

	"github.com/mayra-Sanchez/wm-backend/config"
	"github.com/mayra-Sanchez/wm-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open sets up the GORM connection from DATABASE_URL or the discrete DB_* settings.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table of the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.RevokedToken{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}

// SeedCategories makes sure the three fixed categories exist, so that the
// product default category (id 1) resolves on a fresh database.
func SeedCategories(db *gorm.DB) error {
	for _, name := range []string{models.CategoryHombre, models.CategoryMujer, models.CategoryAccesorio} {
		cat := models.Category{Name: name}
		res := db.Where("name = ?", name).FirstOrCreate(&cat)
		if res.Error != nil {
			return fmt.Errorf("seed category %s: %w", name, res.Error)
		}
		if res.RowsAffected > 0 {
			log.Printf("🌱 Seeded category %q (id=%d)", name, cat.ID)
		}
	}
	return nil
}

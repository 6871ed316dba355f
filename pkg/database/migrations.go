package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/devroster/engine/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.Developer{},
	}
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addActiveSpecialtyIndex,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// addActiveSpecialtyIndex backs the active-by-specialty listing with a partial index.
func addActiveSpecialtyIndex(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_developers_active_specialty
		ON developers(specialty)
		WHERE status = 'ACTIVE'
	`).Error; err != nil {
		return fmt.Errorf("create active specialty index: %w", err)
	}
	return nil
}

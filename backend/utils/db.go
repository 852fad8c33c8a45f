package utils

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mentorpath/backend/config"
	"mentorpath/backend/models"
)

// InitDB opens the Postgres connection and runs migrations.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema and stamps its version.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserProgressRecord{},
		&models.VisitEvent{},
		&models.Course{},
		&models.SavedCourse{},
		&models.CompletedCourse{},
		&models.SchemaMeta{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var meta models.SchemaMeta
	if err := db.FirstOrCreate(&meta, models.SchemaMeta{Version: models.SchemaVersion}).Error; err != nil {
		return fmt.Errorf("stamp schema version: %w", err)
	}
	return nil
}

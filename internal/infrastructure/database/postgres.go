package database

import (
	"log"

	"github.com/meditrack/pharmacy-pos-api/internal/config"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// AutoMigrate runs the schema migrations for the persistent ledger
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Bill{},
		&entity.BillItem{},
	)
}

package db

import (
	"fmt"

	"github.com/mohammadpnp/customer-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables the import service reads and writes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.CustomerImport{},
		&models.AuthIdentity{},
		&models.ProviderIdentity{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

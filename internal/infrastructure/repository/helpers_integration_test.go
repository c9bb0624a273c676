package repository_test

import (
	"os"
	"testing"

	"github.com/mohammadpnp/customer-import/internal/infrastructure/db"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed schema setup: %v", err)
	}

	cleanupSQL := `
    DELETE FROM provider_identity;
    DELETE FROM auth_identity;
    DELETE FROM customer;
    DELETE FROM customer_import;
    `
	if err := gdb.Exec(cleanupSQL).Error; err != nil {
		t.Fatalf("failed cleanup: %v", err)
	}

	return gdb, dsn
}

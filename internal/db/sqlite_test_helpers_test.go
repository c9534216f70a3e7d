package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/jmcgreevy/mulligan/internal/models"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mulligan-db-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createGolferRow(t *testing.T, database *gorm.DB, name string) models.Golfer {
	t.Helper()

	golfer := models.Golfer{Name: name}
	if err := database.Create(&golfer).Error; err != nil {
		t.Fatalf("create golfer %q: %v", name, err)
	}
	return golfer
}

func createUserRow(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "test-hash",
		Name:         "Test User",
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user %q: %v", email, err)
	}
	return user
}

package db

import (
	"testing"

	"github.com/jmcgreevy/mulligan/internal/models"
)

func TestOpenSQLiteAppliesSchema(t *testing.T) {
	database := openTestDatabase(t)

	expectedTables := []string{
		"golfers",
		"users",
		"sessions",
		"golfer_statuses",
		"foursomes",
		"photos",
		"champions",
		"schema_migrations",
	}

	for _, table := range expectedTables {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %q after migrations", table)
		}
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	database := openTestDatabase(t)

	// Reopening the same file must skip already-applied migrations.
	var databasePath string
	if err := database.Raw("SELECT file FROM pragma_database_list WHERE name = 'main'").Scan(&databasePath).Error; err != nil {
		t.Fatalf("resolve database path: %v", err)
	}

	reopened, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	sqlDB, err := reopened.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	defer sqlDB.Close()

	var count int64
	if err := reopened.Table("schema_migrations").Count(&count).Error; err != nil {
		t.Fatalf("count schema migrations: %v", err)
	}
	if count == 0 {
		t.Fatal("expected at least one applied migration")
	}
}

func TestUserEmailUniqueIndex(t *testing.T) {
	database := openTestDatabase(t)

	createUserRow(t, database, "caddy@example.com")

	duplicate := models.User{
		Email:        "caddy@example.com",
		PasswordHash: "other-hash",
		Name:         "Imposter",
	}
	if err := database.Create(&duplicate).Error; err == nil {
		t.Fatal("expected duplicate email insert to fail")
	}
}

package db

import (
	"testing"

	"github.com/jmcgreevy/mulligan/internal/models"
)

func TestChampionYearIsUnique(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewChampionRepository(database)
	golfer := createGolferRow(t, database, "Winner")
	rival := createGolferRow(t, database, "Runner Up")
	user := createUserRow(t, database, "admin@example.com")

	first := models.Champion{Year: 2026, GolferID: golfer.ID, CreatedByUserID: user.ID}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first champion: %v", err)
	}

	second := models.Champion{Year: 2026, GolferID: rival.ID, CreatedByUserID: user.ID}
	if err := repo.Create(&second); err == nil {
		t.Fatal("expected second champion for the same year to fail")
	}
}

func TestChampionListNewestFirst(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewChampionRepository(database)
	golfer := createGolferRow(t, database, "Dynasty")
	user := createUserRow(t, database, "admin@example.com")

	for _, year := range []int{2024, 2026, 2025} {
		champion := models.Champion{Year: year, GolferID: golfer.ID, CreatedByUserID: user.ID}
		if err := repo.Create(&champion); err != nil {
			t.Fatalf("create champion for %d: %v", year, err)
		}
	}

	champions, err := repo.List()
	if err != nil {
		t.Fatalf("list champions: %v", err)
	}

	expected := []int{2026, 2025, 2024}
	for index, year := range expected {
		if champions[index].Year != year {
			t.Fatalf("expected year %d at position %d, got %d", year, index, champions[index].Year)
		}
	}
}

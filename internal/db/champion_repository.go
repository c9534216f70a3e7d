package db

import (
	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

type ChampionRepository struct {
	database *gorm.DB
}

func NewChampionRepository(database *gorm.DB) *ChampionRepository {
	return &ChampionRepository{database: database}
}

func (repo *ChampionRepository) FindByID(championID uint) (models.Champion, error) {
	var champion models.Champion
	if err := repo.database.First(&champion, championID).Error; err != nil {
		return models.Champion{}, err
	}
	return champion, nil
}

func (repo *ChampionRepository) List() ([]models.Champion, error) {
	champions := make([]models.Champion, 0)
	if err := repo.database.Order("year DESC").Find(&champions).Error; err != nil {
		return nil, err
	}
	return champions, nil
}

// Create relies on the unique year index: a concurrent duplicate fails at
// the database and is surfaced, never retried.
func (repo *ChampionRepository) Create(champion *models.Champion) error {
	return repo.database.Create(champion).Error
}

func (repo *ChampionRepository) Save(champion *models.Champion) error {
	return repo.database.Save(champion).Error
}

func (repo *ChampionRepository) Delete(championID uint) error {
	return repo.database.Delete(&models.Champion{}, championID).Error
}

package db

import (
	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

type FoursomeRepository struct {
	database *gorm.DB
}

func NewFoursomeRepository(database *gorm.DB) *FoursomeRepository {
	return &FoursomeRepository{database: database}
}

func (repo *FoursomeRepository) FindByID(foursomeID uint) (models.Foursome, error) {
	var foursome models.Foursome
	if err := repo.database.First(&foursome, foursomeID).Error; err != nil {
		return models.Foursome{}, err
	}
	return foursome, nil
}

func (repo *FoursomeRepository) ListForYear(year int) ([]models.Foursome, error) {
	foursomes := make([]models.Foursome, 0)
	if err := repo.database.Where("year = ?", year).Order("tee_time ASC, id ASC").Find(&foursomes).Error; err != nil {
		return nil, err
	}
	return foursomes, nil
}

func (repo *FoursomeRepository) ListYears() ([]int, error) {
	years := make([]int, 0)
	if err := repo.database.Model(&models.Foursome{}).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error; err != nil {
		return nil, err
	}
	return years, nil
}

func (repo *FoursomeRepository) Create(foursome *models.Foursome) error {
	return repo.database.Create(foursome).Error
}

func (repo *FoursomeRepository) Save(foursome *models.Foursome) error {
	return repo.database.Save(foursome).Error
}

func (repo *FoursomeRepository) Delete(foursomeID uint) error {
	return repo.database.Delete(&models.Foursome{}, foursomeID).Error
}

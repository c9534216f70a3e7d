package db

import (
	"errors"

	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

type GolferStatusRepository struct {
	database *gorm.DB
}

func NewGolferStatusRepository(database *gorm.DB) *GolferStatusRepository {
	return &GolferStatusRepository{database: database}
}

func (repo *GolferStatusRepository) ListForYear(year int) ([]models.GolferStatus, error) {
	statuses := make([]models.GolferStatus, 0)
	if err := repo.database.Where("year = ?", year).Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (repo *GolferStatusRepository) FindForGolferYear(golferID uint, year int) (models.GolferStatus, error) {
	var status models.GolferStatus
	if err := repo.database.Where("golfer_id = ? AND year = ?", golferID, year).First(&status).Error; err != nil {
		return models.GolferStatus{}, err
	}
	return status, nil
}

// Upsert keeps at most one row per (golfer, year). A concurrent first
// write loses to the unique index and surfaces as an error rather than a
// second row.
func (repo *GolferStatusRepository) Upsert(golferID uint, year int, isActive bool, cabin *int) (models.GolferStatus, error) {
	var status models.GolferStatus
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("golfer_id = ? AND year = ?", golferID, year).First(&status)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			status = models.GolferStatus{
				GolferID: golferID,
				Year:     year,
				IsActive: isActive,
				Cabin:    cabin,
			}
			return tx.Create(&status).Error
		}
		if result.Error != nil {
			return result.Error
		}

		status.IsActive = isActive
		status.Cabin = cabin
		return tx.Model(&models.GolferStatus{}).Where("id = ?", status.ID).Updates(map[string]any{
			"is_active": isActive,
			"cabin":     cabin,
		}).Error
	})
	if err != nil {
		return models.GolferStatus{}, err
	}
	return status, nil
}

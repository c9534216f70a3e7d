package db

import (
	"errors"

	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

var ErrGolferReferenced = errors.New("golfer is referenced by foursomes, champions, or statuses")

type GolferRepository struct {
	database *gorm.DB
}

func NewGolferRepository(database *gorm.DB) *GolferRepository {
	return &GolferRepository{database: database}
}

func (repo *GolferRepository) FindByID(golferID uint) (models.Golfer, error) {
	var golfer models.Golfer
	if err := repo.database.First(&golfer, golferID).Error; err != nil {
		return models.Golfer{}, err
	}
	return golfer, nil
}

func (repo *GolferRepository) List() ([]models.Golfer, error) {
	golfers := make([]models.Golfer, 0)
	if err := repo.database.Order("name COLLATE NOCASE ASC").Find(&golfers).Error; err != nil {
		return nil, err
	}
	return golfers, nil
}

func (repo *GolferRepository) Create(golfer *models.Golfer) error {
	return repo.database.Create(golfer).Error
}

func (repo *GolferRepository) Save(golfer *models.Golfer) error {
	return repo.database.Save(golfer).Error
}

// Delete refuses to remove a golfer that is still referenced anywhere, so
// past schedules and champion records keep their subject.
func (repo *GolferRepository) Delete(golferID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var referenced int64
		if err := tx.Model(&models.Foursome{}).
			Where("golfer1_id = ? OR golfer2_id = ? OR golfer3_id = ? OR golfer4_id = ?",
				golferID, golferID, golferID, golferID).
			Count(&referenced).Error; err != nil {
			return err
		}
		if referenced > 0 {
			return ErrGolferReferenced
		}

		if err := tx.Model(&models.Champion{}).Where("golfer_id = ?", golferID).Count(&referenced).Error; err != nil {
			return err
		}
		if referenced > 0 {
			return ErrGolferReferenced
		}

		if err := tx.Where("golfer_id = ?", golferID).Delete(&models.GolferStatus{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("golfer_id = ?", golferID).Update("golfer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Golfer{}, golferID).Error
	})
}

package db

import (
	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	database *gorm.DB
}

func NewPhotoRepository(database *gorm.DB) *PhotoRepository {
	return &PhotoRepository{database: database}
}

func (repo *PhotoRepository) FindByID(photoID uint) (models.Photo, error) {
	var photo models.Photo
	if err := repo.database.First(&photo, photoID).Error; err != nil {
		return models.Photo{}, err
	}
	return photo, nil
}

func (repo *PhotoRepository) List() ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (repo *PhotoRepository) ListByCategory(category string) ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	if err := repo.database.Where("category = ?", category).
		Order("created_at DESC, id DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (repo *PhotoRepository) Create(photo *models.Photo) error {
	return repo.database.Create(photo).Error
}

func (repo *PhotoRepository) Save(photo *models.Photo) error {
	return repo.database.Save(photo).Error
}

// Delete detaches the photo from any champion record before removing it.
func (repo *PhotoRepository) Delete(photoID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Champion{}).Where("photo_id = ?", photoID).Update("photo_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Photo{}, photoID).Error
	})
}

package db

import (
	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.Session) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) FindByToken(token string) (models.Session, error) {
	var session models.Session
	if err := repo.database.Where("token = ?", token).First(&session).Error; err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// DeleteByToken is an idempotent no-op when the token is already gone.
func (repo *SessionRepository) DeleteByToken(token string) error {
	return repo.database.Where("token = ?", token).Delete(&models.Session{}).Error
}

func (repo *SessionRepository) DeleteForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}

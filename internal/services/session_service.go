package services

import (
	"errors"
	"time"

	"github.com/jmcgreevy/mulligan/internal/models"
	"github.com/jmcgreevy/mulligan/internal/security"
)

var ErrSessionInvalid = errors.New("session missing or expired")

type SessionRepository interface {
	Create(session *models.Session) error
	FindByToken(token string) (models.Session, error)
	DeleteByToken(token string) error
}

type SessionUserReader interface {
	FindByID(userID uint) (models.User, error)
}

// SessionService issues, resolves, and revokes opaque login tokens backed
// by session rows. Expiry is absolute (no sliding renewal) and enforced
// lazily: an expired row is deleted the first time its token is resolved.
type SessionService struct {
	sessions SessionRepository
	users    SessionUserReader
	now      func() time.Time
}

func NewSessionService(sessions SessionRepository, users SessionUserReader) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		now:      time.Now,
	}
}

// WithClock substitutes the time source; tests use it to cross the expiry
// instant without sleeping.
func (service *SessionService) WithClock(now func() time.Time) *SessionService {
	service.now = now
	return service
}

func (service *SessionService) Issue(userID uint) (string, error) {
	token, err := security.SessionToken()
	if err != nil {
		return "", err
	}

	session := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: service.now().Add(models.SessionLifetime),
		CreatedAt: service.now(),
	}
	if err := service.sessions.Create(&session); err != nil {
		return "", err
	}
	return token, nil
}

func (service *SessionService) Resolve(token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrSessionInvalid
	}

	session, err := service.sessions.FindByToken(token)
	if err != nil {
		return models.User{}, ErrSessionInvalid
	}

	if !service.now().Before(session.ExpiresAt) {
		_ = service.sessions.DeleteByToken(token)
		return models.User{}, ErrSessionInvalid
	}

	user, err := service.users.FindByID(session.UserID)
	if err != nil {
		return models.User{}, ErrSessionInvalid
	}
	return user, nil
}

func (service *SessionService) Revoke(token string) error {
	return service.sessions.DeleteByToken(token)
}

package services

import (
	"errors"
	"time"

	"github.com/jmcgreevy/mulligan/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account with a bcrypt-hashed password. The raw
// password is never persisted or logged.
func (service *AuthService) Register(email string, rawPassword string, name string) (models.User, error) {
	exists, err := service.users.ExistsByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		Name:         name,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		// Racing registrations lose to the unique email index.
		return models.User{}, ErrDuplicateEmail
	}
	return user, nil
}

// Authenticate verifies the credentials of an existing account. Unknown
// emails are rejected outright; no account is provisioned on the login
// path.
func (service *AuthService) Authenticate(email string, rawPassword string) (models.User, error) {
	user, err := service.users.FindByEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) ChangePassword(userID uint, rawPassword string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(passwordHash))
}

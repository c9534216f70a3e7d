package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jmcgreevy/mulligan/internal/db"
	"github.com/jmcgreevy/mulligan/internal/models"
	"github.com/jmcgreevy/mulligan/internal/security"
)

// RunResetPasswordCommand is the break-glass path for a locked-out account.
// It overwrites the password with a generated temporary one and revokes
// every live session for the user.
func RunResetPasswordCommand(dbPath string, email string) error {
	user, database, err := loadUserByEmail(dbPath, email)
	if err != nil {
		return err
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	err = database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("password_hash", string(passwordHash)).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", user.ID).Delete(&models.Session{}).Error
	})
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful.")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("All existing sessions have been revoked.")

	return nil
}

// RunPromoteCommand grants admin to an existing account. The first admin of
// a fresh install is created this way.
func RunPromoteCommand(dbPath string, email string) error {
	user, database, err := loadUserByEmail(dbPath, email)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		fmt.Printf("%s is already an admin.\n", user.Email)
		return nil
	}

	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Update("is_admin", true).Error; err != nil {
		return fmt.Errorf("promote user: %w", err)
	}

	fmt.Printf("%s is now an admin.\n", user.Email)
	return nil
}

func loadUserByEmail(dbPath string, email string) (models.User, *gorm.DB, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return models.User{}, nil, errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return models.User{}, nil, fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return models.User{}, nil, fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("email = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, nil, fmt.Errorf("user %s not found", normalizedEmail)
		}
		return models.User{}, nil, fmt.Errorf("load user: %w", err)
	}

	return user, database, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}

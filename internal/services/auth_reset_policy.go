package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const passwordResetTokenPurpose = "password_reset"

var (
	ErrPasswordResetTokenMissing = errors.New("missing reset token")
	ErrPasswordResetTokenInvalid = errors.New("invalid reset token")
	ErrPasswordResetTokenExpired = errors.New("expired reset token")
	ErrPasswordResetTokenReused  = errors.New("reset token already used")
)

type PasswordResetClaims struct {
	UserID        uint   `json:"uid"`
	Purpose       string `json:"purpose"`
	PasswordState string `json:"password_state"`
	jwt.RegisteredClaims
}

// PasswordStateFingerprint binds a reset token to the password hash it was
// issued against, so a token dies the moment the password changes.
func PasswordStateFingerprint(passwordHash string) string {
	trimmed := strings.TrimSpace(passwordHash)
	if trimmed == "" {
		return ""
	}
	digest := sha256.Sum256([]byte(trimmed))
	return base64.RawURLEncoding.EncodeToString(digest[:])
}

func BuildPasswordResetToken(secretKey []byte, userID uint, passwordHash string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if now.IsZero() {
		now = time.Now()
	}

	passwordState := PasswordStateFingerprint(passwordHash)
	if passwordState == "" {
		return "", ErrPasswordResetTokenInvalid
	}

	claims := PasswordResetClaims{
		UserID:        userID,
		Purpose:       passwordResetTokenPurpose,
		PasswordState: passwordState,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ParsePasswordResetToken(secretKey []byte, rawToken string, now time.Time) (*PasswordResetClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrPasswordResetTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &PasswordResetClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrPasswordResetTokenInvalid
	}
	if claims.Purpose != passwordResetTokenPurpose {
		return nil, ErrPasswordResetTokenInvalid
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrPasswordResetTokenExpired
	}
	if strings.TrimSpace(claims.PasswordState) == "" {
		return nil, ErrPasswordResetTokenInvalid
	}
	return claims, nil
}

// VerifyPasswordState rejects a token issued before the last password
// change.
func VerifyPasswordState(claims *PasswordResetClaims, currentPasswordHash string) error {
	current := PasswordStateFingerprint(currentPasswordHash)
	if current == "" {
		return ErrPasswordResetTokenInvalid
	}
	if subtle.ConstantTimeCompare([]byte(claims.PasswordState), []byte(current)) != 1 {
		return ErrPasswordResetTokenReused
	}
	return nil
}

package models

import "time"

// Session is an opaque bearer token with an absolute expiry. Expiry is
// lazy: the row stays in place until the token is next resolved.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

const SessionLifetime = 30 * 24 * time.Hour

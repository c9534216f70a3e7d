package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Phone        string
	AvatarURL    string
	IsAdmin      bool      `gorm:"not null;default:false"`
	GolferID     *uint     `gorm:"uniqueIndex"`
	CreatedAt    time.Time `gorm:"not null"`
}

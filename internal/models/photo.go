package models

import "time"

type Photo struct {
	ID        uint   `gorm:"primaryKey"`
	ObjectID  string `gorm:"not null"`
	URL       string `gorm:"not null"`
	Caption   string
	Category  string
	UserID    uint `gorm:"not null;index"`
	CreatedAt time.Time
}

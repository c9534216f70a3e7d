package models

import "time"

// Champion records the winner of one trip year. Year carries a unique
// index so a second champion for the same year fails at the database.
type Champion struct {
	ID              uint `gorm:"primaryKey"`
	Year            int  `gorm:"uniqueIndex;not null"`
	GolferID        uint `gorm:"not null"`
	DisplayName     string
	WinningStory    string
	FavoriteMemory  string
	PhotoID         *uint
	CreatedByUserID uint `gorm:"not null"`
	CreatedAt       time.Time
}

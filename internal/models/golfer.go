package models

import "time"

// Golfer is a trip participant. A golfer may exist without a linked User
// account and vice versa.
type Golfer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string
	Phone     string
	CreatedAt time.Time
}

// GolferStatus records whether a golfer is in for a given year and which
// cabin they sleep in. At most one row per (golfer, year).
type GolferStatus struct {
	ID       uint `gorm:"primaryKey"`
	GolferID uint `gorm:"not null;uniqueIndex:uidx_golfer_year"`
	Year     int  `gorm:"not null;uniqueIndex:uidx_golfer_year"`
	IsActive bool `gorm:"not null;default:false"`
	Cabin    *int
}

const (
	MinCabin = 1
	MaxCabin = 4
)

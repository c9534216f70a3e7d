package models

import "time"

const (
	RoundFridayMorning     = "friday_morning"
	RoundFridayAfternoon   = "friday_afternoon"
	RoundSaturdayMorning   = "saturday_morning"
	RoundSaturdayAfternoon = "saturday_afternoon"
)

const (
	CourseBlack  = "black"
	CourseSilver = "silver"
)

// Foursome is one scheduled round for up to four golfers. TeeTime is a UTC
// instant; tee times are authored as Eastern wall-clock values and
// converted on the way in and out. Score is strokes relative to par.
type Foursome struct {
	ID        uint      `gorm:"primaryKey"`
	Year      int       `gorm:"not null;index"`
	Round     string    `gorm:"not null"`
	Course    string    `gorm:"not null"`
	TeeTime   time.Time `gorm:"not null"`
	Score     int       `gorm:"not null;default:0"`
	Golfer1ID *uint
	Golfer2ID *uint
	Golfer3ID *uint
	Golfer4ID *uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GolferIDs returns the filled slots in slot order.
func (foursome Foursome) GolferIDs() []uint {
	slots := []*uint{foursome.Golfer1ID, foursome.Golfer2ID, foursome.Golfer3ID, foursome.Golfer4ID}
	filled := make([]uint, 0, len(slots))
	for _, slot := range slots {
		if slot != nil {
			filled = append(filled, *slot)
		}
	}
	return filled
}

// Includes reports whether the golfer occupies any slot.
func (foursome Foursome) Includes(golferID uint) bool {
	for _, id := range foursome.GolferIDs() {
		if id == golferID {
			return true
		}
	}
	return false
}

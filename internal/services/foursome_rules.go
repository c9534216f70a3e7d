package services

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jmcgreevy/mulligan/internal/models"
)

var (
	ErrInvalidRound              = errors.New("invalid round")
	ErrInvalidCourse             = errors.New("invalid course")
	ErrInvalidTeeTime            = errors.New("invalid tee time")
	ErrInvalidScore              = errors.New("invalid score")
	ErrInvalidGolferRef          = errors.New("invalid golfer reference")
	ErrNoGolfersAssigned         = errors.New("no golfers assigned")
	ErrDuplicateGolferInFoursome = errors.New("duplicate golfer in foursome")
)

// TeeTimeLayout is the wall-clock format of a datetime-local form field.
const TeeTimeLayout = "2006-01-02T15:04"

// Tee times are always authored in the venue's timezone, not the
// submitter's.
const tripTimezoneName = "America/New_York"

var (
	tripLocationOnce sync.Once
	tripLocation     *time.Location
	tripLocationErr  error
)

func TripTimezone() (*time.Location, error) {
	tripLocationOnce.Do(func() {
		tripLocation, tripLocationErr = time.LoadLocation(tripTimezoneName)
	})
	return tripLocation, tripLocationErr
}

// ParseTeeTime interprets a wall-clock string as Eastern time and returns
// the UTC instant to store.
func ParseTeeTime(local string) (time.Time, error) {
	location, err := TripTimezone()
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := time.ParseInLocation(TeeTimeLayout, strings.TrimSpace(local), location)
	if err != nil {
		return time.Time{}, ErrInvalidTeeTime
	}
	return parsed.UTC(), nil
}

// FormatTeeTime renders a stored UTC instant back as the Eastern
// wall-clock string it was authored as. ParseTeeTime and FormatTeeTime
// round-trip exactly, including across DST transitions.
func FormatTeeTime(teeTime time.Time) string {
	location, err := TripTimezone()
	if err != nil {
		return teeTime.UTC().Format(TeeTimeLayout)
	}
	return teeTime.In(location).Format(TeeTimeLayout)
}

func IsValidRound(round string) bool {
	switch round {
	case models.RoundFridayMorning, models.RoundFridayAfternoon,
		models.RoundSaturdayMorning, models.RoundSaturdayAfternoon:
		return true
	default:
		return false
	}
}

func IsValidCourse(course string) bool {
	switch course {
	case models.CourseBlack, models.CourseSilver:
		return true
	default:
		return false
	}
}

// FoursomeInput carries raw form values for one foursome. Empty golfer
// slots are empty strings.
type FoursomeInput struct {
	Year         int
	Round        string
	Course       string
	TeeTimeLocal string
	GolferSlots  [4]string
	ScoreRaw     string
}

// ValidateFoursome checks the scheduling rules and normalizes the input
// into a storable record: 1-4 distinct golfers, known round and course,
// Eastern tee time converted to UTC, blank score meaning even par.
// Double-booking a golfer across foursomes is deliberately not checked.
func ValidateFoursome(input FoursomeInput) (models.Foursome, error) {
	if !IsValidRound(input.Round) {
		return models.Foursome{}, ErrInvalidRound
	}
	if !IsValidCourse(input.Course) {
		return models.Foursome{}, ErrInvalidCourse
	}

	teeTime, err := ParseTeeTime(input.TeeTimeLocal)
	if err != nil {
		return models.Foursome{}, err
	}

	slots, err := parseGolferSlots(input.GolferSlots)
	if err != nil {
		return models.Foursome{}, err
	}

	score, err := parseScore(input.ScoreRaw)
	if err != nil {
		return models.Foursome{}, err
	}

	return models.Foursome{
		Year:      input.Year,
		Round:     input.Round,
		Course:    input.Course,
		TeeTime:   teeTime,
		Score:     score,
		Golfer1ID: slots[0],
		Golfer2ID: slots[1],
		Golfer3ID: slots[2],
		Golfer4ID: slots[3],
	}, nil
}

func parseGolferSlots(raw [4]string) ([4]*uint, error) {
	var slots [4]*uint
	seen := make(map[uint]struct{}, len(raw))
	filled := 0

	for index, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		golferID, err := strconv.ParseUint(value, 10, 32)
		if err != nil || golferID == 0 {
			return slots, ErrInvalidGolferRef
		}
		id := uint(golferID)
		if _, duplicate := seen[id]; duplicate {
			return slots, ErrDuplicateGolferInFoursome
		}
		seen[id] = struct{}{}
		slots[index] = &id
		filled++
	}

	if filled == 0 {
		return slots, ErrNoGolfersAssigned
	}
	return slots, nil
}

func parseScore(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidScore
	}
	return score, nil
}

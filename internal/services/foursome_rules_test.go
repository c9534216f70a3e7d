package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jmcgreevy/mulligan/internal/models"
)

func validFoursomeInput() FoursomeInput {
	return FoursomeInput{
		Year:         2026,
		Round:        models.RoundFridayMorning,
		Course:       models.CourseBlack,
		TeeTimeLocal: "2026-06-12T08:30",
		GolferSlots:  [4]string{"1", "2", "3", "4"},
		ScoreRaw:     "-3",
	}
}

func TestValidateFoursome_AcceptsFullGroup(t *testing.T) {
	foursome, err := ValidateFoursome(validFoursomeInput())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if foursome.Score != -3 {
		t.Fatalf("expected score -3, got %d", foursome.Score)
	}
	if got := len(foursome.GolferIDs()); got != 4 {
		t.Fatalf("expected 4 golfers, got %d", got)
	}
}

func TestValidateFoursome_RejectsUnknownRound(t *testing.T) {
	input := validFoursomeInput()
	input.Round = "sunday_twilight"
	if _, err := ValidateFoursome(input); !errors.Is(err, ErrInvalidRound) {
		t.Fatalf("expected ErrInvalidRound, got %v", err)
	}
}

func TestValidateFoursome_RejectsUnknownCourse(t *testing.T) {
	input := validFoursomeInput()
	input.Course = "red"
	if _, err := ValidateFoursome(input); !errors.Is(err, ErrInvalidCourse) {
		t.Fatalf("expected ErrInvalidCourse, got %v", err)
	}
}

func TestValidateFoursome_RejectsDuplicateGolfer(t *testing.T) {
	input := validFoursomeInput()
	input.GolferSlots = [4]string{"7", "", "7", ""}
	if _, err := ValidateFoursome(input); !errors.Is(err, ErrDuplicateGolferInFoursome) {
		t.Fatalf("expected ErrDuplicateGolferInFoursome, got %v", err)
	}
}

func TestValidateFoursome_RejectsEmptyGroup(t *testing.T) {
	input := validFoursomeInput()
	input.GolferSlots = [4]string{"", "", "", ""}
	if _, err := ValidateFoursome(input); !errors.Is(err, ErrNoGolfersAssigned) {
		t.Fatalf("expected ErrNoGolfersAssigned, got %v", err)
	}
}

func TestValidateFoursome_AllowsPartialGroupWithGaps(t *testing.T) {
	input := validFoursomeInput()
	input.GolferSlots = [4]string{"", "5", "", "9"}
	foursome, err := ValidateFoursome(input)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if foursome.Golfer1ID != nil || foursome.Golfer3ID != nil {
		t.Fatal("empty slots must stay empty")
	}
	if foursome.Golfer2ID == nil || *foursome.Golfer2ID != 5 {
		t.Fatalf("expected slot 2 golfer 5, got %v", foursome.Golfer2ID)
	}
	if foursome.Golfer4ID == nil || *foursome.Golfer4ID != 9 {
		t.Fatalf("expected slot 4 golfer 9, got %v", foursome.Golfer4ID)
	}
}

func TestValidateFoursome_BlankScoreMeansEvenPar(t *testing.T) {
	input := validFoursomeInput()
	input.ScoreRaw = "  "
	foursome, err := ValidateFoursome(input)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if foursome.Score != 0 {
		t.Fatalf("expected even par 0, got %d", foursome.Score)
	}
}

func TestValidateFoursome_RejectsNonNumericScore(t *testing.T) {
	input := validFoursomeInput()
	input.ScoreRaw = "birdie"
	if _, err := ValidateFoursome(input); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}

func TestValidateFoursome_RejectsMalformedGolferID(t *testing.T) {
	input := validFoursomeInput()
	input.GolferSlots = [4]string{"zero", "", "", ""}
	if _, err := ValidateFoursome(input); !errors.Is(err, ErrInvalidGolferRef) {
		t.Fatalf("expected ErrInvalidGolferRef, got %v", err)
	}
}

func TestParseTeeTime_StoresUTCInstant(t *testing.T) {
	teeTime, err := ParseTeeTime("2026-06-12T08:30")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	// June is EDT, UTC-4.
	expected := time.Date(2026, time.June, 12, 12, 30, 0, 0, time.UTC)
	if !teeTime.Equal(expected) {
		t.Fatalf("expected %v, got %v", expected, teeTime)
	}
	if teeTime.Location() != time.UTC {
		t.Fatalf("expected UTC storage, got %v", teeTime.Location())
	}
}

func TestTeeTimeRoundTripsAcrossDSTTransitions(t *testing.T) {
	testCases := []string{
		"2026-01-15T09:00", // EST, UTC-5
		"2026-06-12T08:30", // EDT, UTC-4
		"2026-03-08T08:00", // morning of the spring-forward Sunday
		"2026-11-01T08:00", // morning of the fall-back Sunday
	}

	for _, local := range testCases {
		teeTime, err := ParseTeeTime(local)
		if err != nil {
			t.Fatalf("parse %q: %v", local, err)
		}
		if got := FormatTeeTime(teeTime); got != local {
			t.Fatalf("expected %q to round-trip, got %q", local, got)
		}
	}
}

func TestParseTeeTime_RejectsMalformedInput(t *testing.T) {
	testCases := []string{
		"",
		"noon friday",
		"2026-06-12", // date without time
	}

	for _, local := range testCases {
		if _, err := ParseTeeTime(local); !errors.Is(err, ErrInvalidTeeTime) {
			t.Fatalf("expected ErrInvalidTeeTime for %q, got %v", local, err)
		}
	}
}

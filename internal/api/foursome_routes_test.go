package api

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/jmcgreevy/mulligan/internal/models"
)

func TestAdminCreatesFoursomeWithEasternTeeTime(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", true)
	cookie := loginAndExtractSessionCookie(t, app, admin.Email, "StrongPass1")
	golfer := createTestGolfer(t, database, "Early Riser")

	response := postForm(t, app, cookie, "/api/foursomes", url.Values{
		"year":     {"2026"},
		"round":    {models.RoundFridayMorning},
		"course":   {models.CourseBlack},
		"tee_time": {"2026-06-12T08:30"},
		"golfer1":  {strconv.FormatUint(uint64(golfer.ID), 10)},
		"score":    {""},
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected create status 303, got %d", response.StatusCode)
	}

	var foursome models.Foursome
	if err := database.Where("year = ?", 2026).First(&foursome).Error; err != nil {
		t.Fatalf("load created foursome: %v", err)
	}

	// 08:30 Eastern in June is 12:30 UTC.
	expected := time.Date(2026, time.June, 12, 12, 30, 0, 0, time.UTC)
	if !foursome.TeeTime.Equal(expected) {
		t.Fatalf("expected tee time %v, got %v", expected, foursome.TeeTime)
	}
	if foursome.Score != 0 {
		t.Fatalf("expected blank score stored as 0, got %d", foursome.Score)
	}
}

func TestCreateFoursomeRejectsDuplicateGolfer(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", true)
	cookie := loginAndExtractSessionCookie(t, app, admin.Email, "StrongPass1")
	golfer := createTestGolfer(t, database, "Doubled Up")
	golferID := strconv.FormatUint(uint64(golfer.ID), 10)

	response := postForm(t, app, cookie, "/api/foursomes", url.Values{
		"year":     {"2026"},
		"round":    {models.RoundFridayMorning},
		"course":   {models.CourseBlack},
		"tee_time": {"2026-06-12T08:30"},
		"golfer1":  {golferID},
		"golfer2":  {golferID},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect 303, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Foursome{}).Count(&count).Error; err != nil {
		t.Fatalf("count foursomes: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no foursome created, got %d", count)
	}
}

func TestGolferMayAppearInTwoFoursomesOfTheSameRound(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", true)
	cookie := loginAndExtractSessionCookie(t, app, admin.Email, "StrongPass1")
	golfer := createTestGolfer(t, database, "Iron Man")
	golferID := strconv.FormatUint(uint64(golfer.ID), 10)

	for _, teeTime := range []string{"2026-06-12T08:30", "2026-06-12T09:00"} {
		response := postForm(t, app, cookie, "/api/foursomes", url.Values{
			"year":     {"2026"},
			"round":    {models.RoundFridayMorning},
			"course":   {models.CourseBlack},
			"tee_time": {teeTime},
			"golfer1":  {golferID},
		})
		response.Body.Close()
		if response.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected create status 303 for %s, got %d", teeTime, response.StatusCode)
		}
	}

	var count int64
	if err := database.Model(&models.Foursome{}).Count(&count).Error; err != nil {
		t.Fatalf("count foursomes: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected both foursomes saved, got %d", count)
	}
}

func TestUpdateFoursomePreservesIdentity(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", true)
	cookie := loginAndExtractSessionCookie(t, app, admin.Email, "StrongPass1")
	golfer := createTestGolfer(t, database, "Mover")

	foursome := models.Foursome{
		Year:      2026,
		Round:     models.RoundFridayMorning,
		Course:    models.CourseBlack,
		TeeTime:   time.Date(2026, time.June, 12, 12, 30, 0, 0, time.UTC),
		Golfer1ID: &golfer.ID,
	}
	if err := database.Create(&foursome).Error; err != nil {
		t.Fatalf("create foursome: %v", err)
	}

	updatePath := "/api/foursomes/" + strconv.FormatUint(uint64(foursome.ID), 10)
	response := postForm(t, app, cookie, updatePath, url.Values{
		"year":     {"2026"},
		"round":    {models.RoundSaturdayAfternoon},
		"course":   {models.CourseSilver},
		"tee_time": {"2026-06-13T14:00"},
		"golfer1":  {strconv.FormatUint(uint64(golfer.ID), 10)},
		"score":    {"4"},
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected update status 303, got %d", response.StatusCode)
	}

	var reloaded models.Foursome
	if err := database.First(&reloaded, foursome.ID).Error; err != nil {
		t.Fatalf("reload foursome: %v", err)
	}
	if reloaded.Round != models.RoundSaturdayAfternoon || reloaded.Course != models.CourseSilver {
		t.Fatalf("expected round and course updated, got %s/%s", reloaded.Round, reloaded.Course)
	}
	if reloaded.Score != 4 {
		t.Fatalf("expected score 4, got %d", reloaded.Score)
	}

	var count int64
	if err := database.Model(&models.Foursome{}).Count(&count).Error; err != nil {
		t.Fatalf("count foursomes: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected update in place, got %d rows", count)
	}
}

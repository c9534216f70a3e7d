package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/models"
)

func roundLabel(round string) string {
	switch round {
	case models.RoundFridayMorning:
		return "Friday Morning"
	case models.RoundFridayAfternoon:
		return "Friday Afternoon"
	case models.RoundSaturdayMorning:
		return "Saturday Morning"
	case models.RoundSaturdayAfternoon:
		return "Saturday Afternoon"
	default:
		return round
	}
}

func courseLabel(course string) string {
	switch course {
	case models.CourseBlack:
		return "Black"
	case models.CourseSilver:
		return "Silver"
	default:
		return course
	}
}

// scoreLabel renders a total relative to par. A nil score is "no rounds
// yet", which is not the same thing as even par.
func scoreLabel(score *int) string {
	if score == nil {
		return "—"
	}
	switch {
	case *score == 0:
		return "E"
	case *score > 0:
		return fmt.Sprintf("+%d", *score)
	default:
		return strconv.Itoa(*score)
	}
}

func requestedYear(c *fiber.Ctx) int {
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil && year > 1900 && year < 3000 {
			return year
		}
	}
	return time.Now().Year()
}

func requestedFormYear(c *fiber.Ctx) int {
	raw := strings.TrimSpace(c.FormValue("year"))
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 1900 || year >= 3000 {
		return 0
	}
	return year
}

func foursomesPathForYear(year int) string {
	return fmt.Sprintf("/foursomes?year=%d", year)
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("malformed id %q", raw)
	}
	return uint(id), nil
}

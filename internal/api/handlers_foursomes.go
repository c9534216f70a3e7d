package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/models"
	"github.com/jmcgreevy/mulligan/internal/services"
	"gorm.io/gorm"
)

type foursomeView struct {
	Foursome    models.Foursome
	GolferNames []string
	TeeTimeText string
}

var scheduleRoundOrder = []string{
	models.RoundFridayMorning,
	models.RoundFridayAfternoon,
	models.RoundSaturdayMorning,
	models.RoundSaturdayAfternoon,
}

type scheduleRoundView struct {
	Round     string
	Foursomes []foursomeView
}

func (handler *Handler) ShowFoursomes(c *fiber.Ctx) error {
	year := requestedYear(c)

	foursomes, err := handler.repositories.Foursomes.ListForYear(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load schedule")
	}
	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load schedule")
	}

	nameByID := make(map[uint]string, len(golfers))
	for _, golfer := range golfers {
		nameByID[golfer.ID] = golfer.Name
	}

	rounds := make([]scheduleRoundView, 0, len(scheduleRoundOrder))
	for _, round := range scheduleRoundOrder {
		view := scheduleRoundView{Round: round}
		for _, foursome := range foursomes {
			if foursome.Round != round {
				continue
			}
			view.Foursomes = append(view.Foursomes, buildFoursomeView(foursome, nameByID))
		}
		rounds = append(rounds, view)
	}

	years, err := handler.repositories.Foursomes.ListYears()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load schedule")
	}

	return handler.render(c, "foursomes", fiber.Map{
		"Title":  "Foursomes",
		"Year":   year,
		"Years":  years,
		"Rounds": rounds,
	})
}

func buildFoursomeView(foursome models.Foursome, nameByID map[uint]string) foursomeView {
	view := foursomeView{
		Foursome:    foursome,
		TeeTimeText: services.FormatTeeTime(foursome.TeeTime),
	}
	for _, golferID := range foursome.GolferIDs() {
		if name, exists := nameByID[golferID]; exists {
			view.GolferNames = append(view.GolferNames, name)
		}
	}
	return view
}

func (handler *Handler) ShowNewFoursome(c *fiber.Ctx) error {
	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load golfers")
	}
	return handler.render(c, "foursome_form", fiber.Map{
		"Title":   "New foursome",
		"Year":    requestedYear(c),
		"Golfers": golfers,
	})
}

func (handler *Handler) ShowEditFoursome(c *fiber.Ctx) error {
	foursomeID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("malformed foursome id")
	}

	foursome, err := handler.repositories.Foursomes.FindByID(foursomeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("foursome not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load foursome")
	}

	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load golfers")
	}

	return handler.render(c, "foursome_form", fiber.Map{
		"Title":    "Edit foursome",
		"Year":     foursome.Year,
		"Foursome": foursome,
		// Redisplay converts the stored UTC instant back to the Eastern
		// wall clock the admin originally typed.
		"TeeTimeLocal": services.FormatTeeTime(foursome.TeeTime),
		"Golfers":      golfers,
	})
}

func (handler *Handler) CreateFoursome(c *fiber.Ctx) error {
	validated, formError := handler.parseFoursomeForm(c)
	if formError != "" {
		return handler.respondFormError(c, "/foursomes/new", fiber.StatusBadRequest, formError)
	}

	if err := handler.repositories.Foursomes.Create(&validated); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create foursome")
	}
	return redirectOrJSON(c, foursomesPathForYear(validated.Year))
}

func (handler *Handler) UpdateFoursome(c *fiber.Ctx) error {
	foursomeID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed foursome id")
	}

	existing, err := handler.repositories.Foursomes.FindByID(foursomeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "foursome not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load foursome")
	}

	validated, formError := handler.parseFoursomeForm(c)
	if formError != "" {
		return handler.respondFormError(c, "/foursomes", fiber.StatusBadRequest, formError)
	}

	validated.ID = existing.ID
	validated.CreatedAt = existing.CreatedAt
	if err := handler.repositories.Foursomes.Save(&validated); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update foursome")
	}
	return redirectOrJSON(c, foursomesPathForYear(validated.Year))
}

func (handler *Handler) DeleteFoursome(c *fiber.Ctx) error {
	foursomeID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed foursome id")
	}
	if err := handler.repositories.Foursomes.Delete(foursomeID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete foursome")
	}
	return redirectOrJSON(c, "/foursomes")
}

// parseFoursomeForm runs the scheduling rules over the raw form and
// returns a user-facing message for any violation.
func (handler *Handler) parseFoursomeForm(c *fiber.Ctx) (models.Foursome, string) {
	year := requestedFormYear(c)
	if year == 0 {
		return models.Foursome{}, "invalid year"
	}

	input := services.FoursomeInput{
		Year:         year,
		Round:        c.FormValue("round"),
		Course:       c.FormValue("course"),
		TeeTimeLocal: c.FormValue("tee_time"),
		GolferSlots: [4]string{
			c.FormValue("golfer1"),
			c.FormValue("golfer2"),
			c.FormValue("golfer3"),
			c.FormValue("golfer4"),
		},
		ScoreRaw: c.FormValue("score"),
	}

	validated, err := services.ValidateFoursome(input)
	if err != nil {
		return models.Foursome{}, foursomeErrorMessage(err)
	}
	return validated, ""
}

func foursomeErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidRound):
		return "pick one of the four rounds"
	case errors.Is(err, services.ErrInvalidCourse):
		return "pick a course"
	case errors.Is(err, services.ErrInvalidTeeTime):
		return "tee time must be a valid date and time"
	case errors.Is(err, services.ErrNoGolfersAssigned):
		return "assign at least one golfer"
	case errors.Is(err, services.ErrDuplicateGolferInFoursome):
		return "a golfer can only appear once per foursome"
	case errors.Is(err, services.ErrInvalidGolferRef):
		return "unknown golfer in a slot"
	case errors.Is(err, services.ErrInvalidScore):
		return "score must be a whole number"
	default:
		return "invalid foursome"
	}
}

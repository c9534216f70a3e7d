package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/db"
	"github.com/jmcgreevy/mulligan/internal/models"
	"github.com/jmcgreevy/mulligan/internal/services"
	"gorm.io/gorm"
)

type golferRosterRow struct {
	Golfer   models.Golfer
	IsActive bool
	Cabin    *int
}

func (handler *Handler) ShowGolfers(c *fiber.Ctx) error {
	year := requestedYear(c)

	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load golfers")
	}
	statuses, err := handler.repositories.Statuses.ListForYear(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load golfers")
	}

	statusByGolfer := make(map[uint]models.GolferStatus, len(statuses))
	for _, status := range statuses {
		statusByGolfer[status.GolferID] = status
	}

	rows := make([]golferRosterRow, 0, len(golfers))
	for _, golfer := range golfers {
		row := golferRosterRow{Golfer: golfer}
		if status, exists := statusByGolfer[golfer.ID]; exists {
			row.IsActive = status.IsActive
			row.Cabin = status.Cabin
		}
		rows = append(rows, row)
	}

	return handler.render(c, "golfers", fiber.Map{
		"Title":  "Golfers",
		"Year":   year,
		"Roster": rows,
	})
}

func (handler *Handler) CreateGolfer(c *fiber.Ctx) error {
	input := golferInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/golfers", fiber.StatusBadRequest, "invalid input")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return handler.respondFormError(c, "/golfers", fiber.StatusBadRequest, "name is required")
	}

	golfer := models.Golfer{
		Name:  name,
		Email: strings.TrimSpace(input.Email),
		Phone: strings.TrimSpace(input.Phone),
	}
	if err := handler.repositories.Golfers.Create(&golfer); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create golfer")
	}

	return redirectOrJSON(c, "/golfers")
}

func (handler *Handler) UpdateGolfer(c *fiber.Ctx) error {
	golferID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed golfer id")
	}

	golfer, err := handler.repositories.Golfers.FindByID(golferID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "golfer not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load golfer")
	}

	input := golferInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/golfers", fiber.StatusBadRequest, "invalid input")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return handler.respondFormError(c, "/golfers", fiber.StatusBadRequest, "name is required")
	}

	golfer.Name = name
	golfer.Email = strings.TrimSpace(input.Email)
	golfer.Phone = strings.TrimSpace(input.Phone)
	if err := handler.repositories.Golfers.Save(&golfer); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update golfer")
	}

	return redirectOrJSON(c, "/golfers")
}

func (handler *Handler) DeleteGolfer(c *fiber.Ctx) error {
	golferID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed golfer id")
	}

	if err := handler.repositories.Golfers.Delete(golferID); err != nil {
		if errors.Is(err, db.ErrGolferReferenced) {
			return handler.respondFormError(c, "/golfers", fiber.StatusConflict,
				"golfer still appears in foursomes or champion records")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete golfer")
	}

	return redirectOrJSON(c, "/golfers")
}

// UpsertGolferStatus creates or updates the one (golfer, year) status row.
func (handler *Handler) UpsertGolferStatus(c *fiber.Ctx) error {
	golferID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed golfer id")
	}

	input := golferStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/golfers", fiber.StatusBadRequest, "invalid input")
	}
	if input.Year <= 1900 || input.Year >= 3000 {
		return handler.respondFormError(c, "/golfers", fiber.StatusBadRequest, "invalid year")
	}

	cabin, err := services.ParseCabin(input.Cabin)
	if err != nil {
		return handler.respondFormError(c, "/golfers", fiber.StatusBadRequest, "cabin must be between 1 and 4")
	}

	if _, err := handler.repositories.Golfers.FindByID(golferID); err != nil {
		return apiError(c, fiber.StatusNotFound, "golfer not found")
	}

	if _, err := handler.repositories.Statuses.Upsert(golferID, input.Year, input.IsActive, cabin); err != nil {
		return handler.respondFormError(c, "/golfers", fiber.StatusConflict, "status update collided, try again")
	}

	return redirectOrJSON(c, "/golfers")
}

func (handler *Handler) respondFormError(c *fiber.Ctx, redirectPath string, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{Error: message})
	return c.Redirect(redirectPath, fiber.StatusSeeOther)
}

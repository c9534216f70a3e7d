package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

type championView struct {
	Champion   models.Champion
	GolferName string
	PhotoURL   string
}

func (handler *Handler) ShowChampions(c *fiber.Ctx) error {
	champions, err := handler.repositories.Champions.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load champions")
	}
	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load champions")
	}

	nameByID := make(map[uint]string, len(golfers))
	for _, golfer := range golfers {
		nameByID[golfer.ID] = golfer.Name
	}

	views := make([]championView, 0, len(champions))
	for _, champion := range champions {
		view := championView{Champion: champion}
		if champion.DisplayName != "" {
			view.GolferName = champion.DisplayName
		} else {
			view.GolferName = nameByID[champion.GolferID]
		}
		if champion.PhotoID != nil {
			if photo, err := handler.repositories.Photos.FindByID(*champion.PhotoID); err == nil {
				view.PhotoURL = photo.URL
			}
		}
		views = append(views, view)
	}

	return handler.render(c, "champions", fiber.Map{
		"Title":     "Past champions",
		"Champions": views,
	})
}

func (handler *Handler) ShowNewChampion(c *fiber.Ctx) error {
	return handler.renderChampionForm(c, "New champion", models.Champion{})
}

func (handler *Handler) ShowEditChampion(c *fiber.Ctx) error {
	championID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("malformed champion id")
	}
	champion, err := handler.repositories.Champions.FindByID(championID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("champion not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load champion")
	}
	return handler.renderChampionForm(c, "Edit champion", champion)
}

func (handler *Handler) renderChampionForm(c *fiber.Ctx, title string, champion models.Champion) error {
	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load golfers")
	}
	photos, err := handler.repositories.Photos.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load photos")
	}
	return handler.render(c, "champion_form", fiber.Map{
		"Title":    title,
		"Champion": champion,
		"Golfers":  golfers,
		"Photos":   photos,
	})
}

// CreateChampion records one winner per year. A duplicate year, including
// one from a racing admin, fails on the unique index and comes back as a
// conflict message.
func (handler *Handler) CreateChampion(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	champion, formError := handler.parseChampionForm(c)
	if formError != "" {
		return handler.respondFormError(c, "/champions/new", fiber.StatusBadRequest, formError)
	}
	champion.CreatedByUserID = user.ID

	if err := handler.repositories.Champions.Create(&champion); err != nil {
		return handler.respondFormError(c, "/champions/new", fiber.StatusConflict,
			"that year already has a champion")
	}
	return redirectOrJSON(c, "/champions")
}

func (handler *Handler) UpdateChampion(c *fiber.Ctx) error {
	championID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed champion id")
	}

	existing, err := handler.repositories.Champions.FindByID(championID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "champion not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load champion")
	}

	champion, formError := handler.parseChampionForm(c)
	if formError != "" {
		return handler.respondFormError(c, "/champions", fiber.StatusBadRequest, formError)
	}

	champion.ID = existing.ID
	champion.CreatedByUserID = existing.CreatedByUserID
	champion.CreatedAt = existing.CreatedAt
	if err := handler.repositories.Champions.Save(&champion); err != nil {
		return handler.respondFormError(c, "/champions", fiber.StatusConflict,
			"that year already has a champion")
	}
	return redirectOrJSON(c, "/champions")
}

func (handler *Handler) DeleteChampion(c *fiber.Ctx) error {
	championID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed champion id")
	}
	if err := handler.repositories.Champions.Delete(championID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete champion")
	}
	return redirectOrJSON(c, "/champions")
}

func (handler *Handler) parseChampionForm(c *fiber.Ctx) (models.Champion, string) {
	input := championInput{}
	if err := c.BodyParser(&input); err != nil {
		return models.Champion{}, "invalid input"
	}
	if input.Year <= 1900 || input.Year >= 3000 {
		return models.Champion{}, "invalid year"
	}
	if input.GolferID == 0 {
		return models.Champion{}, "pick the winning golfer"
	}
	if _, err := handler.repositories.Golfers.FindByID(input.GolferID); err != nil {
		return models.Champion{}, "unknown golfer"
	}

	champion := models.Champion{
		Year:           input.Year,
		GolferID:       input.GolferID,
		DisplayName:    strings.TrimSpace(input.DisplayName),
		WinningStory:   strings.TrimSpace(input.WinningStory),
		FavoriteMemory: strings.TrimSpace(input.FavoriteMemory),
	}

	if raw := strings.TrimSpace(input.PhotoID); raw != "" {
		photoID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || photoID == 0 {
			return models.Champion{}, "unknown photo"
		}
		id := uint(photoID)
		if _, err := handler.repositories.Photos.FindByID(id); err != nil {
			return models.Champion{}, "unknown photo"
		}
		champion.PhotoID = &id
	}

	return champion, ""
}

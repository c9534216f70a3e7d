package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/services"
)

func (handler *Handler) ShowStandings(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	year := requestedYear(c)
	sortKey, descending := requestedStandingsSort(c)

	standings, err := handler.computeStandingsForYear(year, user.IsAdmin, sortKey, descending)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load standings")
	}

	years, err := handler.repositories.Foursomes.ListYears()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load standings")
	}

	return handler.render(c, "standings", fiber.Map{
		"Title":      "Standings",
		"Year":       year,
		"Years":      years,
		"Standings":  standings,
		"SortKey":    sortKey,
		"Descending": descending,
	})
}

func (handler *Handler) GetStandings(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	year := requestedYear(c)
	sortKey, descending := requestedStandingsSort(c)

	standings, err := handler.computeStandingsForYear(year, user.IsAdmin, sortKey, descending)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load standings")
	}

	rows := make([]fiber.Map, 0, len(standings))
	for _, standing := range standings {
		row := fiber.Map{
			"golfer_id":     standing.Golfer.ID,
			"name":          standing.Golfer.Name,
			"rounds_played": standing.RoundsPlayed,
			"is_active":     standing.IsActive,
			"total_score":   standing.TotalScore,
			"cabin":         standing.Cabin,
		}
		rows = append(rows, row)
	}

	return c.JSON(fiber.Map{
		"year":      year,
		"sort":      sortKey,
		"desc":      descending,
		"standings": rows,
	})
}

// The leaderboard is always derived fresh from foursome and status rows;
// there is no stored total to drift out of date.
func (handler *Handler) computeStandingsForYear(year int, viewerIsAdmin bool, sortKey string, descending bool) ([]services.Standing, error) {
	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return nil, err
	}
	foursomes, err := handler.repositories.Foursomes.ListForYear(year)
	if err != nil {
		return nil, err
	}
	statuses, err := handler.repositories.Statuses.ListForYear(year)
	if err != nil {
		return nil, err
	}
	return services.ComputeStandings(year, golfers, foursomes, statuses, viewerIsAdmin, sortKey, descending), nil
}

func requestedStandingsSort(c *fiber.Ctx) (string, bool) {
	sortKey := strings.TrimSpace(c.Query("sort"))
	if !services.IsValidStandingsSort(sortKey) {
		sortKey = services.SortByName
	}
	descending := strings.EqualFold(c.Query("dir"), "desc")
	return sortKey, descending
}

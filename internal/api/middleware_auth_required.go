package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the session cookie to a user or short-circuits the
// request: pages bounce to the login screen, API calls get a 401. The
// resolved user is stashed for downstream handlers.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies(sessionCookieName))
	user, err := handler.sessionService.Resolve(token)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// AdminOnly guards every mutating route on golfers, foursomes, champions,
// photos, and user administration. It assumes AuthRequired already ran.
func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || !user.IsAdmin {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin required"})
		}
		return c.Status(fiber.StatusForbidden).SendString("admin required")
	}
	return c.Next()
}

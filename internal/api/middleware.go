package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/models"
)

const (
	// The session cookie carries the opaque token: Path=/, HttpOnly,
	// SameSite=Lax, 30-day Max-Age.
	sessionCookieName = "session"
	flashCookieName   = "mulligan_flash"
	contextUserKey    = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

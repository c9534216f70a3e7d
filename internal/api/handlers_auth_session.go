package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/models"
)

func (handler *Handler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		MaxAge:   int(models.SessionLifetime / time.Second),
	})
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		MaxAge:   0,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid email or password")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "name is required")
	}
	if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "passwords do not match")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "password too weak")
	}

	user, err := handler.authService.Register(email, password, name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return handler.respondAuthError(c, fiber.StatusConflict, "email already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	token, err := handler.sessionService.Issue(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setSessionCookie(c, token)

	return redirectOrJSON(c, "/standings")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid email or password")
	}

	user, err := handler.authService.Authenticate(email, password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.sessionService.Issue(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setSessionCookie(c, token)

	return redirectOrJSON(c, "/standings")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies(sessionCookieName))
	if token != "" {
		_ = handler.sessionService.Revoke(token)
	}
	handler.clearSessionCookie(c)

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	if strings.HasPrefix(c.Path(), "/api/auth/") && !acceptsJSON(c) {
		flash := FlashPayload{Error: message}
		switch c.Path() {
		case "/api/auth/register":
			flash.FormEmail = services.NormalizeAuthEmail(c.FormValue("email"))
			flash.FormName = strings.TrimSpace(c.FormValue("name"))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/register", fiber.StatusSeeOther)
		case "/api/auth/login":
			flash.LoginEmail = services.NormalizeAuthEmail(c.FormValue("email"))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		case "/api/auth/forgot-password":
			handler.setFlashCookie(c, flash)
			return c.Redirect("/forgot-password", fiber.StatusSeeOther)
		case "/api/auth/reset-password":
			handler.setFlashCookie(c, flash)
			return c.Redirect("/reset-password", fiber.StatusSeeOther)
		default:
			handler.setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
	}
	return apiError(c, status, message)
}

package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.sessionIsLive(c) {
		return c.Redirect("/standings", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{"Title": "Log in"})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if handler.sessionIsLive(c) {
		return c.Redirect("/standings", fiber.StatusSeeOther)
	}
	return handler.render(c, "register", fiber.Map{"Title": "Register"})
}

func (handler *Handler) ShowForgotPasswordPage(c *fiber.Ctx) error {
	return handler.render(c, "forgot_password", fiber.Map{"Title": "Forgot password"})
}

func (handler *Handler) ShowResetPasswordPage(c *fiber.Ctx) error {
	return handler.render(c, "reset_password", fiber.Map{
		"Title": "Reset password",
		"Token": strings.TrimSpace(c.Query("token")),
	})
}

func (handler *Handler) sessionIsLive(c *fiber.Ctx) bool {
	token := strings.TrimSpace(c.Cookies(sessionCookieName))
	if token == "" {
		return false
	}
	_, err := handler.sessionService.Resolve(token)
	return err == nil
}

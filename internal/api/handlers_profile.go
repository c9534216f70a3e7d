package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) ShowProfile(c *fiber.Ctx) error {
	return handler.render(c, "profile", fiber.Map{"Title": "Profile"})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/profile", fiber.StatusBadRequest, "invalid input")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return handler.respondFormError(c, "/profile", fiber.StatusBadRequest, "name is required")
	}

	if err := handler.repositories.Users.UpdateByID(user.ID, map[string]any{
		"name":  name,
		"phone": strings.TrimSpace(input.Phone),
	}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	if !acceptsJSON(c) {
		handler.setFlashCookie(c, FlashPayload{Success: "Profile updated."})
	}
	return redirectOrJSON(c, "/profile")
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/profile", fiber.StatusBadRequest, "invalid input")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return handler.respondFormError(c, "/profile", fiber.StatusUnauthorized, "current password is wrong")
	}
	if input.NewPassword != input.ConfirmPassword {
		return handler.respondFormError(c, "/profile", fiber.StatusBadRequest, "passwords do not match")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return handler.respondFormError(c, "/profile", fiber.StatusBadRequest, "password too weak")
	}

	if err := handler.authService.ChangePassword(user.ID, input.NewPassword); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}

	if !acceptsJSON(c) {
		handler.setFlashCookie(c, FlashPayload{Success: "Password changed."})
	}
	return redirectOrJSON(c, "/profile")
}

package api

import (
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/services"
)

const passwordResetTokenTTL = 30 * time.Minute

// ForgotPassword emails a reset link. The response is identical whether or
// not the email matches an account, so the form cannot be used to probe
// the roster.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := services.NormalizeAuthEmail(input.Email)
	if email == "" {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid email")
	}

	if user, err := handler.repositories.Users.FindByEmail(email); err == nil {
		token, err := services.BuildPasswordResetToken(handler.secretKey, user.ID, user.PasswordHash, passwordResetTokenTTL, time.Now())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
		}
		resetURL := fmt.Sprintf("%s/reset-password?token=%s", handler.baseURL, url.QueryEscape(token))
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Somebody asked to reset your Mulligan password. The link below works for 30 minutes.</p><p><a href=%q>Reset password</a></p>",
			template.HTMLEscapeString(user.Name), resetURL,
		)
		result := handler.mailer.Send(user.Email, "Mulligan password reset", body)
		if result.Err != nil {
			log.Warn("password reset email failed", "user_id", user.ID, "error", result.Err)
		}
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{Success: "If that email has an account, a reset link is on its way."})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	claims, err := services.ParsePasswordResetToken(handler.secretKey, input.Token, time.Now())
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "reset link is invalid or expired")
	}

	user, err := handler.repositories.Users.FindByID(claims.UserID)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "reset link is invalid or expired")
	}
	if err := services.VerifyPasswordState(claims, user.PasswordHash); err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "reset link is invalid or expired")
	}

	if input.Password != input.ConfirmPassword {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "passwords do not match")
	}
	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "password too weak")
	}

	if err := handler.authService.ChangePassword(user.ID, input.Password); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}
	// Changing the hash invalidates every other outstanding reset token;
	// drop any live sessions too.
	_ = handler.repositories.Sessions.DeleteForUser(user.ID)

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{Success: "Password updated. Log in with the new one."})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

package api

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/db"
	"github.com/jmcgreevy/mulligan/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ShowUsers(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load users")
	}
	golfers, err := handler.repositories.Golfers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load users")
	}
	return handler.render(c, "users", fiber.Map{
		"Title":   "Users",
		"Users":   users,
		"Golfers": golfers,
	})
}

// CreateUser provisions an account on an attendee's behalf. The welcome
// email is best-effort; a dead SMTP server must not strand the account.
func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input := newUserInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/users", fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return handler.respondFormError(c, "/users", fiber.StatusBadRequest, "invalid email or password")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return handler.respondFormError(c, "/users", fiber.StatusBadRequest, "name is required")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return handler.respondFormError(c, "/users", fiber.StatusBadRequest, "password too weak")
	}

	user, err := handler.authService.Register(email, password, name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return handler.respondFormError(c, "/users", fiber.StatusConflict, "email already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	updates := map[string]any{}
	if input.IsAdmin {
		updates["is_admin"] = true
	}
	if golferID := parseOptionalGolferID(input.GolferID); golferID != nil {
		if _, err := handler.repositories.Golfers.FindByID(*golferID); err == nil {
			updates["golfer_id"] = *golferID
		}
	}
	if len(updates) > 0 {
		if err := handler.repositories.Users.UpdateByID(user.ID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to finish account setup")
		}
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You now have a Mulligan account. Log in at <a href=%q>%s</a> with this email address.</p>",
		template.HTMLEscapeString(user.Name), handler.baseURL, handler.baseURL,
	)
	if result := handler.mailer.Send(user.Email, "Welcome to Mulligan", body); result.Err != nil {
		log.Warn("welcome email failed", "user_id", user.ID, "error", result.Err)
	}

	return redirectOrJSON(c, "/users")
}

func (handler *Handler) ToggleUserAdmin(c *fiber.Ctx) error {
	actor, _ := currentUser(c)

	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed user id")
	}
	if userID == actor.ID {
		return handler.respondFormError(c, "/users", fiber.StatusBadRequest, "you cannot change your own admin flag")
	}

	user, err := handler.repositories.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	if err := handler.repositories.Users.UpdateByID(user.ID, map[string]any{"is_admin": !user.IsAdmin}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update user")
	}
	return redirectOrJSON(c, "/users")
}

// DeleteUser blocks self-deletion and deletion of anyone who still owns
// champion or photo records.
func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	actor, _ := currentUser(c)

	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed user id")
	}
	if userID == actor.ID {
		return handler.respondFormError(c, "/users", fiber.StatusBadRequest, "you cannot delete your own account")
	}

	if err := handler.repositories.Users.Delete(userID); err != nil {
		if errors.Is(err, db.ErrUserOwnsRecords) {
			return handler.respondFormError(c, "/users", fiber.StatusConflict,
				"user still owns champion or photo records")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}
	return redirectOrJSON(c, "/users")
}

func parseOptionalGolferID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return nil
	}
	id := uint(parsed)
	return &id
}

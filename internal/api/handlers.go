package api

import (
	"fmt"
	"html/template"
	"time"

	"github.com/jmcgreevy/mulligan/internal/db"
	"github.com/jmcgreevy/mulligan/internal/imagestore"
	"github.com/jmcgreevy/mulligan/internal/mail"
	"github.com/jmcgreevy/mulligan/internal/services"
	"gorm.io/gorm"
)

var pageTemplates = []string{
	"login",
	"register",
	"forgot_password",
	"reset_password",
	"standings",
	"foursomes",
	"foursome_form",
	"golfers",
	"champions",
	"champion_form",
	"photos",
	"users",
	"profile",
}

func NewHandler(
	database *gorm.DB,
	secretKey string,
	templateDir string,
	cookieSecure bool,
	baseURL string,
	mailer *mail.Mailer,
	images imagestore.Store,
) (*Handler, error) {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		baseURL:      baseURL,
		mailer:       mailer,
		images:       images,
	}
	handler.withDependencies(database)

	templates, err := parsePageTemplates(templateDir, handler.templateFuncMap(), pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	handler.templates = templates

	return handler, nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.sessionService = services.NewSessionService(handler.repositories.Sessions, handler.repositories.Users)
	return handler
}

// WithClock forwards a substitute time source to the session service.
// Integration tests use it to step past session expiry.
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.sessionService.WithClock(now)
	return handler
}

func (handler *Handler) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"teeTimeLocal": services.FormatTeeTime,
		"roundLabel":   roundLabel,
		"courseLabel":  courseLabel,
		"scoreLabel":   scoreLabel,
		"deref": func(value *uint) uint {
			if value == nil {
				return 0
			}
			return *value
		},
	}
}

package api

import (
	"html/template"

	"github.com/jmcgreevy/mulligan/internal/db"
	"github.com/jmcgreevy/mulligan/internal/imagestore"
	"github.com/jmcgreevy/mulligan/internal/mail"
	"github.com/jmcgreevy/mulligan/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	baseURL      string

	repositories   *db.Repositories
	authService    *services.AuthService
	sessionService *services.SessionService

	mailer *mail.Mailer
	images imagestore.Store

	templates map[string]*template.Template
}

// FlashPayload survives one redirect in a short-lived cookie so forms can
// re-render with their error and the input the user already typed.
type FlashPayload struct {
	Error      string `json:"error,omitempty"`
	Success    string `json:"success,omitempty"`
	LoginEmail string `json:"login_email,omitempty"`
	FormEmail  string `json:"form_email,omitempty"`
	FormName   string `json:"form_name,omitempty"`
}

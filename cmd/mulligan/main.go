package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jmcgreevy/mulligan/internal/api"
	"github.com/jmcgreevy/mulligan/internal/cli"
	"github.com/jmcgreevy/mulligan/internal/config"
	"github.com/jmcgreevy/mulligan/internal/db"
	"github.com/jmcgreevy/mulligan/internal/imagestore"
	"github.com/jmcgreevy/mulligan/internal/mail"
)

func main() {
	resetEmail := flag.String("reset-password", "", "reset the password for the given account email and exit")
	promoteEmail := flag.String("promote", "", "grant admin to the given account email and exit")
	flag.Parse()

	cfg := config.Load()

	if *resetEmail != "" {
		if err := cli.RunResetPasswordCommand(cfg.DBPath, *resetEmail); err != nil {
			charmlog.Fatal("password reset failed", "error", err)
		}
		return
	}
	if *promoteEmail != "" {
		if err := cli.RunPromoteCommand(cfg.DBPath, *promoteEmail); err != nil {
			charmlog.Fatal("promote failed", "error", err)
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		charmlog.Fatal("database init failed", "error", err)
	}

	images, err := imagestore.NewLocalStore(cfg.UploadsDir, "/uploads")
	if err != nil {
		charmlog.Fatal("image store init failed", "error", err)
	}

	mailer := mail.New(cfg.Mail)
	if !cfg.Mail.Enabled() {
		charmlog.Warn("SMTP not configured, password reset emails will be skipped")
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, filepath.Join("internal", "templates"), cfg.CookieSecure, cfg.BaseURL, mailer, images)
	if err != nil {
		charmlog.Fatal("handler init failed", "error", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Mulligan",
		DisableStartupMessage: true,
		BodyLimit:             25 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "mulligan_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cfg.CookieSecure,
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			// JSON API clients authenticate with the session cookie and
			// send no form token.
			return c.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON
		},
	}))

	app.Static("/static", filepath.Join("web", "static"))
	app.Static("/uploads", cfg.UploadsDir)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			charmlog.Error("server shutdown failed", "error", err)
		}
	}()

	charmlog.Info("Mulligan listening", "addr", "http://0.0.0.0:"+cfg.Port, "db", cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		charmlog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)
	app.Get("/forgot-password", handler.ShowForgotPasswordPage)
	app.Get("/reset-password", handler.ShowResetPasswordPage)

	app.Get("/", handler.AuthRequired, redirectToStandings)
	app.Get("/standings", handler.AuthRequired, handler.ShowStandings)
	app.Get("/foursomes", handler.AuthRequired, handler.ShowFoursomes)
	app.Get("/foursomes/new", handler.AuthRequired, handler.AdminOnly, handler.ShowNewFoursome)
	app.Get("/foursomes/:id/edit", handler.AuthRequired, handler.AdminOnly, handler.ShowEditFoursome)
	app.Get("/golfers", handler.AuthRequired, handler.ShowGolfers)
	app.Get("/champions", handler.AuthRequired, handler.ShowChampions)
	app.Get("/champions/new", handler.AuthRequired, handler.AdminOnly, handler.ShowNewChampion)
	app.Get("/champions/:id/edit", handler.AuthRequired, handler.AdminOnly, handler.ShowEditChampion)
	app.Get("/photos", handler.AuthRequired, handler.ShowPhotos)
	app.Get("/users", handler.AuthRequired, handler.AdminOnly, handler.ShowUsers)
	app.Get("/profile", handler.AuthRequired, handler.ShowProfile)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/standings", handler.AuthRequired, handler.GetStandings)

	golfers := api.Group("/golfers", handler.AuthRequired, handler.AdminOnly)
	golfers.Post("", handler.CreateGolfer)
	golfers.Post("/:id", handler.UpdateGolfer)
	golfers.Post("/:id/delete", handler.DeleteGolfer)
	golfers.Post("/:id/status", handler.UpsertGolferStatus)

	foursomes := api.Group("/foursomes", handler.AuthRequired, handler.AdminOnly)
	foursomes.Post("", handler.CreateFoursome)
	foursomes.Post("/:id", handler.UpdateFoursome)
	foursomes.Post("/:id/delete", handler.DeleteFoursome)

	champions := api.Group("/champions", handler.AuthRequired, handler.AdminOnly)
	champions.Post("", handler.CreateChampion)
	champions.Post("/:id", handler.UpdateChampion)
	champions.Post("/:id/delete", handler.DeleteChampion)

	photos := api.Group("/photos", handler.AuthRequired, handler.AdminOnly)
	photos.Post("", handler.UploadPhoto)
	photos.Post("/:id", handler.UpdatePhoto)
	photos.Post("/:id/delete", handler.DeletePhoto)

	users := api.Group("/users", handler.AuthRequired, handler.AdminOnly)
	users.Post("", handler.CreateUser)
	users.Post("/:id/toggle-admin", handler.ToggleUserAdmin)
	users.Post("/:id/delete", handler.DeleteUser)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Post("", handler.UpdateProfile)
	profile.Post("/password", handler.ChangePassword)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func redirectToStandings(c *fiber.Ctx) error {
	return c.Redirect("/standings", fiber.StatusSeeOther)
}

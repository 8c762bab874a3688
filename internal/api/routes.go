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

	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/report/:id", handler.AuthRequired, handler.ShowReport)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	customers := api.Group("/customers", handler.AuthRequired)
	customers.Get("", handler.GetCustomers)
	customers.Post("", handler.SaveCustomer)
	customers.Delete("/:id", handler.DeleteCustomer)

	customers.Get("/:id/records", handler.GetRecords)
	customers.Get("/:id/records/:date", handler.GetRecord)
	customers.Post("/:id/records/:date", handler.UpsertRecord)
	customers.Delete("/:id/records/:date", handler.DeleteRecord)

	customers.Get("/:id/report", handler.GetReport)
	customers.Get("/:id/report.csv", handler.ReportCSV)
	customers.Get("/:id/report.pdf", handler.ReportPDF)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Post("/regenerate-recovery-code", handler.RegenerateRecoveryCode)
	settings.Delete("/delete-account", handler.DeleteAccount)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

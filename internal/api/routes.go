package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/remedies", handler.ListRemedies)
	api.Post("/feedback", handler.OptionalAuth, handler.SubmitFeedback)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	cycle := api.Group("/cycle", handler.AuthRequired)
	cycle.Get("", handler.GetCycle)
	cycle.Put("", handler.UpdateCycle)
	api.Get("/calendar", handler.AuthRequired, handler.GetCalendar)

	mood := api.Group("/mood", handler.AuthRequired)
	mood.Post("", handler.AnalyzeMood)
	mood.Get("", handler.MoodHistory)

	health := api.Group("/health", handler.AuthRequired)
	health.Get("", handler.GetHealth)
	health.Put("", handler.SubmitHealth)

	chat := api.Group("/chat", handler.AuthRequired)
	chat.Post("", handler.StartChat)
	chat.Get("/:id", handler.GetChat)
	chat.Post("/:id/messages", handler.SendChatMessage)

	challenges := api.Group("/challenges", handler.AuthRequired)
	challenges.Get("", handler.ListChallenges)
	challenges.Post("/:id/complete", handler.CompleteChallenge)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Delete("/delete-account", handler.DeleteAccount)
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) AnalyzeMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var selection services.MoodSelection
	if err := parseJSON(c, &selection); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	verdict, err := handler.moodService.Analyze(user.ID, selection, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to analyze mood")
	}
	return c.JSON(verdict)
}

func (handler *Handler) MoodHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.moodService.History(user.ID, c.QueryInt("limit", 0))
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load mood history")
	}
	return c.JSON(fiber.Map{"entries": entries})
}

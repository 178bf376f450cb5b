package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) GetHealth(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	report, err := handler.healthService.Load(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load health survey")
	}
	return c.JSON(report)
}

func (handler *Handler) SubmitHealth(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var survey services.SymptomSurvey
	if err := parseJSON(c, &survey); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	report, err := handler.healthService.Submit(user.ID, survey, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to analyze health survey")
	}
	return c.JSON(report)
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) ListRemedies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"remedies": services.Remedies()})
}

func (handler *Handler) SubmitFeedback(c *fiber.Ctx) error {
	var input services.FeedbackInput
	if err := parseJSON(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	var userID *uint
	if user, ok := currentUser(c); ok {
		userID = &user.ID
	}

	entry, err := handler.feedbackService.Submit(userID, input, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to save feedback")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": entry.ID})
}

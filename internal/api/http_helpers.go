package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

var errInvalidBody = errors.New("invalid input")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseJSON decodes the request body and rejects anything that is not JSON.
func parseJSON(c *fiber.Ctx, target any) error {
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		return errInvalidBody
	}
	if err := c.BodyParser(target); err != nil {
		return errInvalidBody
	}
	return nil
}

// inputErrorMessage returns the client-facing message for validation errors
// and false for anything that should surface as a server error.
func inputErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, errInvalidBody):
		return "invalid input", true
	case errors.Is(err, services.ErrInvalidCycleInput):
		return "invalid cycle input", true
	case errors.Is(err, services.ErrIncompleteSelection):
		return "please answer every question", true
	case errors.Is(err, services.ErrInvalidSurvey):
		return "invalid health survey", true
	case errors.Is(err, services.ErrInvalidFeedback):
		return "invalid feedback", true
	case errors.Is(err, services.ErrEmptyChatMessage):
		return "message is required", true
	case errors.Is(err, services.ErrExportFromDateInvalid):
		return "invalid from date", true
	case errors.Is(err, services.ErrExportToDateInvalid):
		return "invalid to date", true
	case errors.Is(err, services.ErrExportRangeInvalid):
		return "invalid range", true
	}
	return "", false
}

// respondServiceError maps known validation failures to 400 and logs the rest
// as 500 with a generic message.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	if message, ok := inputErrorMessage(err); ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	handler.log.Error(fallback, "path", c.Path(), "error", err.Error())
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

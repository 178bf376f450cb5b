package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.cycleService.Overview(user.ID, handler.today())
	if errors.Is(err, services.ErrCycleProfileIncomplete) {
		return c.JSON(fiber.Map{"profile": overview.Profile, "prediction": nil})
	}
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load cycle")
	}
	return c.JSON(overview)
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.CycleInput
	if err := parseJSON(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	overview, err := handler.cycleService.Recalculate(user.ID, input, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to update cycle")
	}
	return c.JSON(overview)
}

// GetCalendar renders ?month=YYYY-MM (1-based month), defaulting to the
// current month.
func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := handler.today()
	year, month, err := services.ParseCalendarMonth(c.Query("month"), services.CalendarDateOf(today))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	calendar, err := handler.cycleService.Calendar(user.ID, year, month, today)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load calendar")
	}
	return c.JSON(calendar)
}

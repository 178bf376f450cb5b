package api

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

// exportRange reads the inclusive ?from= and ?to= dates.
func (handler *Handler) exportRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	return services.ParseExportRange(c.Query("from"), c.Query("to"), handler.location)
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	from, to, err := handler.exportRange(c)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to build export")
	}

	summary, err := handler.exportService.BuildSummary(user.ID, from, to, handler.location)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to build export")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	from, to, err := handler.exportRange(c)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to build export")
	}

	entries, err := handler.exportService.BuildEntries(user.ID, from, to, handler.location)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, entry := range entries {
		if err := writer.Write(entry.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(services.ExportFilename("moods", "csv", handler.today()))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	from, to, err := handler.exportRange(c)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to build export")
	}

	entries, err := handler.exportService.BuildEntries(user.ID, from, to, handler.location)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to build export")
	}

	c.Attachment(services.ExportFilename("moods", "json", handler.today()))
	return c.JSON(fiber.Map{
		"exported_at": handler.today().Format(time.RFC3339),
		"entries":     entries,
	})
}

package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

type deleteAccountInput struct {
	Password string `json:"password"`
}

var passwordChangeMessages = []struct {
	err     error
	message string
}{
	{services.ErrSettingsPasswordChangeInvalidInput, "invalid input"},
	{services.ErrSettingsPasswordMismatch, "password mismatch"},
	{services.ErrSettingsInvalidCurrentPassword, "invalid current password"},
	{services.ErrSettingsNewPasswordMustDiffer, "new password must differ"},
	{services.ErrSettingsWeakPassword, "weak password"},
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.PasswordChangeInput
	if err := parseJSON(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.settingsService.ChangePassword(user.ID, input); err != nil {
		for _, candidate := range passwordChangeMessages {
			if errors.Is(err, candidate.err) {
				return apiError(c, fiber.StatusBadRequest, candidate.message)
			}
		}
		return handler.respondServiceError(c, err, "failed to update password")
	}

	refreshed, err := handler.authService.FindByID(user.ID)
	if err == nil {
		if _, err := handler.setAuthCookie(c, &refreshed, true); err != nil {
			handler.log.Warn("refresh session after password change failed", "user_id", user.ID, "error", err.Error())
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input deleteAccountInput
	if err := parseJSON(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.settingsService.DeleteAccount(user.ID, input.Password)
	switch {
	case errors.Is(err, services.ErrSettingsPasswordMissing):
		return apiError(c, fiber.StatusBadRequest, "password is required")
	case errors.Is(err, services.ErrSettingsPasswordInvalid):
		return apiError(c, fiber.StatusUnauthorized, "invalid password")
	case err != nil:
		return handler.respondServiceError(c, err, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

var (
	ErrSettingsPasswordChangeInvalidInput = errors.New("settings password change invalid input")
	ErrSettingsPasswordMismatch           = errors.New("settings password mismatch")
	ErrSettingsInvalidCurrentPassword     = errors.New("settings invalid current password")
	ErrSettingsNewPasswordMustDiffer      = errors.New("settings new password must differ")
	ErrSettingsWeakPassword               = errors.New("settings weak password")
	ErrSettingsPasswordMissing            = errors.New("settings password missing")
	ErrSettingsPasswordInvalid            = errors.New("settings password invalid")
)

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	DeleteAccountAndRelatedData(userID uint) error
}

type PasswordChangeInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SettingsService struct {
	users SettingsUserRepository
	log   *logger.Logger
}

func NewSettingsService(users SettingsUserRepository, log *logger.Logger) *SettingsService {
	if log == nil {
		log = logger.Nop()
	}
	return &SettingsService{users: users, log: log}
}

func ValidatePasswordChange(passwordHash string, input PasswordChangeInput) error {
	current := strings.TrimSpace(input.CurrentPassword)
	next := strings.TrimSpace(input.NewPassword)
	confirm := strings.TrimSpace(input.ConfirmPassword)

	switch {
	case current == "" || next == "" || confirm == "":
		return ErrSettingsPasswordChangeInvalidInput
	case next != confirm:
		return ErrSettingsPasswordMismatch
	case !passwordMatches(passwordHash, current):
		return ErrSettingsInvalidCurrentPassword
	case current == next:
		return ErrSettingsNewPasswordMustDiffer
	}
	if ValidatePasswordStrength(next) != nil {
		return ErrSettingsWeakPassword
	}
	return nil
}

func (service *SettingsService) ChangePassword(userID uint, input PasswordChangeInput) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if err := ValidatePasswordChange(user.PasswordHash, input); err != nil {
		return err
	}

	hash, err := HashPassword(strings.TrimSpace(input.NewPassword))
	if err != nil {
		return err
	}
	if err := service.users.UpdatePassword(userID, hash, false); err != nil {
		return err
	}
	service.log.Info("password changed", "user_id", userID)
	return nil
}

// DeleteAccount requires the current password and removes the user with every
// record owned by them.
func (service *SettingsService) DeleteAccount(userID uint, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrSettingsPasswordMissing
	}
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !passwordMatches(user.PasswordHash, password) {
		return ErrSettingsPasswordInvalid
	}
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		return err
	}
	service.log.Info("account deleted", "user_id", userID)
	return nil
}

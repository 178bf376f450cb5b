package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/luna/internal/db"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
	"github.com/terraincognita07/luna/internal/security"
	"github.com/terraincognita07/luna/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

var (
	ErrResetEmailInvalid = errors.New("a valid email is required")
	ErrResetUserNotFound = errors.New("user not found")
)

type passwordResetStore interface {
	FindByNormalizedEmail(email string) (models.User, error)
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type ResetOptions struct {
	DBPath string
	Email  string
	Stdin  *os.File
	Stdout io.Writer
	Log    *logger.Logger
}

// RunResetPasswordCommand sets a new password for the account. On a terminal
// the password is read without echo; otherwise a temporary password is
// generated and the user must change it on next login.
func RunResetPasswordCommand(options ResetOptions) error {
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}
	if options.Stdin == nil {
		options.Stdin = os.Stdin
	}

	database, err := db.OpenSQLite(options.DBPath, options.Log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	chosen, err := promptNewPassword(options.Stdin, options.Stdout)
	if errors.Is(err, errPasswordsMismatch) {
		return err
	}
	if err != nil {
		chosen = ""
	}

	stored, temporary, err := resetPassword(db.NewUserRepository(database), options.Email, chosen)
	if err != nil {
		return err
	}

	fmt.Fprintln(options.Stdout, "Password reset successful.")
	if temporary {
		fmt.Fprintf(options.Stdout, "Temporary password: %s\n", stored)
		fmt.Fprintln(options.Stdout, "User must change password on next login.")
	}
	return nil
}

// resetPassword stores newPassword, or a generated temporary password when it
// is empty, and reports which one was used.
func resetPassword(users passwordResetStore, rawEmail string, newPassword string) (string, bool, error) {
	email := services.NormalizeAuthEmail(rawEmail)
	if email == "" {
		return "", false, ErrResetEmailInvalid
	}

	user, err := users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, fmt.Errorf("%w: %s", ErrResetUserNotFound, email)
	}
	if err != nil {
		return "", false, fmt.Errorf("load user: %w", err)
	}

	temporary := newPassword == ""
	if temporary {
		newPassword, err = security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
	}
	if err := services.ValidatePasswordStrength(newPassword); err != nil {
		return "", false, err
	}

	hash, err := services.HashPassword(newPassword)
	if err != nil {
		return "", false, fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePassword(user.ID, hash, temporary); err != nil {
		return "", false, fmt.Errorf("update user password: %w", err)
	}
	return newPassword, temporary, nil
}

package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAuthEmailTaken       = errors.New("auth email already registered")
	ErrAuthDisplayNameLong  = errors.New("auth display name too long")
	ErrAuthPasswordMismatch = errors.New("auth password mismatch")
)

const maxDisplayNameRunes = 80

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type RegistrationInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DisplayName     string `json:"display_name"`
}

type AuthService struct {
	users AuthUserRepository
	log   *logger.Logger
}

func NewAuthService(users AuthUserRepository, log *logger.Logger) *AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthService{users: users, log: log}
}

// Register creates an account with the default cycle profile. The confirm
// password is only checked when it is supplied.
func (service *AuthService) Register(input RegistrationInput, now time.Time) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return models.User{}, err
	}
	if confirm := strings.TrimSpace(input.ConfirmPassword); confirm != "" && confirm != password {
		return models.User{}, ErrAuthPasswordMismatch
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}
	displayName := strings.TrimSpace(input.DisplayName)
	if len([]rune(displayName)) > maxDisplayNameRunes {
		return models.User{}, ErrAuthDisplayNameLong
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrAuthEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         models.RoleOwner,
		CycleLength:  models.DefaultCycleLength,
		PeriodLength: models.DefaultPeriodLength,
		CreatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	service.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate returns ErrAuthCredentialsInvalid for both unknown emails and
// wrong passwords.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, err
	}
	if !passwordMatches(user.PasswordHash, password) {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

var ErrCycleProfileIncomplete = errors.New("cycle profile has no last period date")

const (
	MinCycleLength  = 20
	MaxCycleLength  = 45
	MinPeriodLength = 1
	MaxPeriodLength = 10

	MinProfileYear = 1900
	MaxProfileYear = 2100
)

type CycleUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateCycleProfile(userID uint, cycleLength int, periodLength int, lastPeriodStart time.Time) error
}

type CycleInput struct {
	LastPeriodStart string `json:"last_period_start"`
	CycleLength     int    `json:"cycle_length"`
	PeriodDuration  int    `json:"period_duration"`
}

type CycleOverview struct {
	Profile    CycleProfile     `json:"profile"`
	Prediction PredictionResult `json:"prediction"`
}

type CycleService struct {
	users CycleUserRepository
	log   *logger.Logger
}

func NewCycleService(users CycleUserRepository, log *logger.Logger) *CycleService {
	if log == nil {
		log = logger.Nop()
	}
	return &CycleService{users: users, log: log}
}

// ParseCycleInput turns form input into a profile that is safe to store.
// A zero period duration keeps the default of five days.
func ParseCycleInput(input CycleInput) (CycleProfile, error) {
	lastPeriodStart, err := ParseCalendarDate(input.LastPeriodStart)
	if err != nil {
		return CycleProfile{}, err
	}
	profile := CycleProfile{
		LastPeriodStart:    lastPeriodStart,
		CycleLengthDays:    input.CycleLength,
		PeriodDurationDays: input.PeriodDuration,
	}
	if profile.PeriodDurationDays == 0 {
		profile.PeriodDurationDays = DefaultPeriodDurationDays
	}
	if err := ValidateCycleProfile(profile); err != nil {
		return CycleProfile{}, err
	}
	return profile, nil
}

func ValidateCycleProfile(profile CycleProfile) error {
	if profile.LastPeriodStart.IsZero() {
		return fmt.Errorf("%w: last period start is required", ErrInvalidCycleInput)
	}
	if year := profile.LastPeriodStart.Year; year < MinProfileYear || year > MaxProfileYear {
		return fmt.Errorf("%w: last period start must be between %d and %d", ErrInvalidCycleInput, MinProfileYear, MaxProfileYear)
	}
	if profile.CycleLengthDays < MinCycleLength || profile.CycleLengthDays > MaxCycleLength {
		return fmt.Errorf("%w: cycle length must be between %d and %d", ErrInvalidCycleInput, MinCycleLength, MaxCycleLength)
	}
	if profile.PeriodDurationDays < MinPeriodLength || profile.PeriodDurationDays > MaxPeriodLength {
		return fmt.Errorf("%w: period duration must be between %d and %d", ErrInvalidCycleInput, MinPeriodLength, MaxPeriodLength)
	}
	return nil
}

func (service *CycleService) LoadProfile(userID uint) (CycleProfile, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return CycleProfile{}, err
	}
	return profileFromUser(user), nil
}

// Recalculate stores the new profile and predicts from it. A failed write is
// logged and the prediction is still returned.
func (service *CycleService) Recalculate(userID uint, input CycleInput, today time.Time) (CycleOverview, error) {
	profile, err := ParseCycleInput(input)
	if err != nil {
		return CycleOverview{}, err
	}
	prediction, err := PredictCycle(profile, today)
	if err != nil {
		return CycleOverview{}, err
	}

	if err := service.users.UpdateCycleProfile(userID, profile.CycleLengthDays, profile.PeriodDurationDays, profile.LastPeriodStart.Time(time.UTC)); err != nil {
		service.log.Error("save cycle profile failed", "user_id", userID, "error", err.Error())
	}
	return CycleOverview{Profile: profile, Prediction: prediction}, nil
}

func (service *CycleService) Overview(userID uint, today time.Time) (CycleOverview, error) {
	profile, err := service.LoadProfile(userID)
	if err != nil {
		return CycleOverview{}, err
	}
	if profile.LastPeriodStart.IsZero() {
		return CycleOverview{Profile: profile}, ErrCycleProfileIncomplete
	}
	prediction, err := PredictCycle(profile, today)
	if err != nil {
		return CycleOverview{}, err
	}
	return CycleOverview{Profile: profile, Prediction: prediction}, nil
}

// Calendar renders month for the stored profile; without a last period date
// every day is unmarked.
func (service *CycleService) Calendar(userID uint, year int, month time.Month, today time.Time) (CalendarMonth, error) {
	overview, err := service.Overview(userID, today)
	if err != nil && !errors.Is(err, ErrCycleProfileIncomplete) {
		return CalendarMonth{}, err
	}
	return BuildCalendarMonth(year, month, overview.Prediction), nil
}

func profileFromUser(user models.User) CycleProfile {
	profile := CycleProfile{
		CycleLengthDays:    user.CycleLength,
		PeriodDurationDays: user.PeriodLength,
	}
	if profile.CycleLengthDays <= 0 {
		profile.CycleLengthDays = models.DefaultCycleLength
	}
	if profile.PeriodDurationDays <= 0 {
		profile.PeriodDurationDays = models.DefaultPeriodLength
	}
	if user.LastPeriodStart != nil {
		profile.LastPeriodStart = CalendarDateOf(user.LastPeriodStart.UTC())
	}
	return profile
}

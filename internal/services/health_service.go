package services

import (
	"slices"
	"time"

	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

type HealthSurveyRepository interface {
	FindByUser(userID uint) (models.HealthSurvey, bool, error)
	Replace(survey *models.HealthSurvey) error
}

type HealthReport struct {
	Survey       *SymptomSurvey `json:"survey,omitempty"`
	Insight      string         `json:"insight"`
	Distribution []SymptomCount `json:"distribution"`
}

type HealthService struct {
	surveys HealthSurveyRepository
	log     *logger.Logger
}

func NewHealthService(surveys HealthSurveyRepository, log *logger.Logger) *HealthService {
	if log == nil {
		log = logger.Nop()
	}
	return &HealthService{surveys: surveys, log: log}
}

// Load returns the stored survey with its insight, or the default insight and
// baseline chart when nothing was submitted yet.
func (service *HealthService) Load(userID uint) (HealthReport, error) {
	stored, found, err := service.surveys.FindByUser(userID)
	if err != nil {
		return HealthReport{}, err
	}
	if !found {
		return HealthReport{Insight: DefaultInsight, Distribution: slices.Clone(BaselineSymptomDistribution)}, nil
	}

	survey := surveyFromModel(stored)
	distribution := SymptomDistribution(survey.SelectedSymptoms)
	if len(distribution) == 0 {
		distribution = slices.Clone(BaselineSymptomDistribution)
	}
	return HealthReport{Survey: &survey, Insight: AnalyzeSurvey(survey), Distribution: distribution}, nil
}

// Submit replaces the stored survey. An empty symptom selection keeps the
// previously shown distribution instead of an empty chart.
func (service *HealthService) Submit(userID uint, input SymptomSurvey, now time.Time) (HealthReport, error) {
	survey, err := ValidateSurvey(input)
	if err != nil {
		return HealthReport{}, err
	}

	distribution := SymptomDistribution(survey.SelectedSymptoms)
	if len(distribution) == 0 {
		distribution = service.previousDistribution(userID)
	}

	record := &models.HealthSurvey{
		UserID:              userID,
		Age:                 survey.Age,
		Regularity:          survey.Regularity,
		PrimarySymptom:      survey.PrimarySymptom,
		SymptomDurationDays: survey.SymptomDurationDays,
		PainLevel:           survey.PainLevel,
		SelectedSymptoms:    survey.SelectedSymptoms,
		UpdatedAt:           now,
	}
	if err := service.surveys.Replace(record); err != nil {
		service.log.Error("save health survey failed", "user_id", userID, "error", err.Error())
	}

	return HealthReport{Survey: &survey, Insight: AnalyzeSurvey(survey), Distribution: distribution}, nil
}

func (service *HealthService) previousDistribution(userID uint) []SymptomCount {
	stored, found, err := service.surveys.FindByUser(userID)
	if err != nil {
		service.log.Warn("load previous health survey failed", "user_id", userID, "error", err.Error())
	}
	if found {
		if previous := SymptomDistribution(stored.SelectedSymptoms); len(previous) > 0 {
			return previous
		}
	}
	return slices.Clone(BaselineSymptomDistribution)
}

func surveyFromModel(stored models.HealthSurvey) SymptomSurvey {
	return SymptomSurvey{
		Age:                 stored.Age,
		Regularity:          stored.Regularity,
		PrimarySymptom:      stored.PrimarySymptom,
		SymptomDurationDays: stored.SymptomDurationDays,
		PainLevel:           stored.PainLevel,
		SelectedSymptoms:    slices.Clone(stored.SelectedSymptoms),
	}
}

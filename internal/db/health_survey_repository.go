package db

import (
	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HealthSurveyRepository struct {
	database *gorm.DB
}

func NewHealthSurveyRepository(database *gorm.DB) *HealthSurveyRepository {
	return &HealthSurveyRepository{database: database}
}

func (repo *HealthSurveyRepository) FindByUser(userID uint) (models.HealthSurvey, bool, error) {
	survey := models.HealthSurvey{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&survey)
	if result.Error != nil {
		return models.HealthSurvey{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HealthSurvey{}, false, nil
	}
	return survey, true, nil
}

// Replace overwrites every column of the user's single survey row.
func (repo *HealthSurveyRepository) Replace(survey *models.HealthSurvey) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age",
			"regularity",
			"primary_symptom",
			"symptom_duration_days",
			"pain_level",
			"selected_symptoms",
			"updated_at",
		}),
	}).Create(survey).Error
}

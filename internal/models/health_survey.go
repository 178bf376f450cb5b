package models

import "time"

type HealthSurvey struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	UserID              uint      `gorm:"not null;uniqueIndex" json:"-"`
	Age                 int       `gorm:"not null" json:"age"`
	Regularity          string    `gorm:"not null" json:"regularity"`
	PrimarySymptom      string    `gorm:"not null" json:"primary_symptom"`
	SymptomDurationDays int       `gorm:"not null" json:"symptom_duration_days"`
	PainLevel           int       `gorm:"not null" json:"pain_level"`
	SelectedSymptoms    []string  `gorm:"type:text;not null;serializer:json" json:"selected_symptoms"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}

func (HealthSurvey) TableName() string {
	return "health_surveys"
}

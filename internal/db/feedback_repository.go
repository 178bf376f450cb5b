package db

import (
	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	database *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{database: database}
}

func (repo *FeedbackRepository) Create(entry *models.Feedback) error {
	return repo.database.Create(entry).Error
}

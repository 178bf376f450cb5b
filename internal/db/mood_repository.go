package db

import (
	"time"

	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

func (repo *MoodRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodRepository) ListRecent(userID uint, limit int) ([]models.MoodEntry, error) {
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := make([]models.MoodEntry, 0)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserRange returns entries in chronological order; to is exclusive.
func (repo *MoodRepository) ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error) {
	query := repo.database.Model(&models.MoodEntry{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	entries := make([]models.MoodEntry, 0)
	if err := query.Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

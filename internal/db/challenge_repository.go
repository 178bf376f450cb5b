package db

import (
	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeRepository struct {
	database *gorm.DB
}

func NewChallengeRepository(database *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{database: database}
}

// RecordCompletion stores the completion and credits its points to the user in
// one transaction. It reports false when the challenge was already completed
// that day, including when a concurrent request won the unique index.
func (repo *ChallengeRepository) RecordCompletion(completion *models.ChallengeCompletion) (bool, error) {
	recorded := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(completion)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", completion.UserID).
			Update("points", gorm.Expr("points + ?", completion.Points)).Error; err != nil {
			return err
		}
		recorded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return recorded, nil
}

func (repo *ChallengeRepository) ListByUserDay(userID uint, day string) ([]models.ChallengeCompletion, error) {
	completions := make([]models.ChallengeCompletion, 0)
	if err := repo.database.
		Where("user_id = ? AND day = ?", userID, day).
		Order("id ASC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

package services

import (
	"time"

	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

const defaultMoodHistoryLimit = 30

type MoodEntryRepository interface {
	Create(entry *models.MoodEntry) error
	ListRecent(userID uint, limit int) ([]models.MoodEntry, error)
}

type MoodService struct {
	moods MoodEntryRepository
	log   *logger.Logger
}

func NewMoodService(moods MoodEntryRepository, log *logger.Logger) *MoodService {
	if log == nil {
		log = logger.Nop()
	}
	return &MoodService{moods: moods, log: log}
}

// Analyze evaluates the selection and appends it to the user's mood log. The
// verdict is returned even when the log write fails.
func (service *MoodService) Analyze(userID uint, selection MoodSelection, now time.Time) (MoodVerdict, error) {
	normalized := NormalizeMoodSelection(selection)
	verdict, err := EvaluateMood(normalized)
	if err != nil {
		return MoodVerdict{}, err
	}

	entry := &models.MoodEntry{
		UserID:    userID,
		Energy:    string(normalized.Energy),
		Comfort:   string(normalized.Comfort),
		Emotion:   string(normalized.Emotion),
		MoodTitle: verdict.Title,
		CreatedAt: now,
	}
	if err := service.moods.Create(entry); err != nil {
		service.log.Error("save mood entry failed", "user_id", userID, "error", err.Error())
	}
	return verdict, nil
}

func (service *MoodService) History(userID uint, limit int) ([]models.MoodEntry, error) {
	if limit <= 0 || limit > 365 {
		limit = defaultMoodHistoryLimit
	}
	return service.moods.ListRecent(userID, limit)
}

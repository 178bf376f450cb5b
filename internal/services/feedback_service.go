package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

var ErrInvalidFeedback = errors.New("invalid feedback")

type FeedbackRepository interface {
	Create(entry *models.Feedback) error
}

type FeedbackInput struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Message string `json:"message" validate:"required,max=4000"`
}

type FeedbackService struct {
	feedback FeedbackRepository
	log      *logger.Logger
}

func NewFeedbackService(feedback FeedbackRepository, log *logger.Logger) *FeedbackService {
	if log == nil {
		log = logger.Nop()
	}
	return &FeedbackService{feedback: feedback, log: log}
}

// Submit stores feedback from a signed-in user or, with a nil userID, from an
// anonymous visitor.
func (service *FeedbackService) Submit(userID *uint, input FeedbackInput, now time.Time) (models.Feedback, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Message = strings.TrimSpace(input.Message)

	if err := validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return models.Feedback{}, fmt.Errorf("%w: %s", ErrInvalidFeedback, strings.ToLower(validationErrors[0].Field()))
		}
		return models.Feedback{}, fmt.Errorf("%w: %v", ErrInvalidFeedback, err)
	}

	entry := models.Feedback{
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		Rating:    input.Rating,
		Message:   input.Message,
		CreatedAt: now,
	}
	if err := service.feedback.Create(&entry); err != nil {
		return models.Feedback{}, err
	}
	service.log.Info("feedback received", "feedback_id", entry.ID, "rating", entry.Rating)
	return entry, nil
}

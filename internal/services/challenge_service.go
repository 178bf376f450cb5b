package services

import (
	"errors"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

const DefaultChallengeDraw = 3

var (
	ErrChallengeNotFound         = errors.New("challenge not found")
	ErrChallengeAlreadyCompleted = errors.New("challenge already completed today")
)

type Challenge struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Points   int    `json:"points"`
	Category string `json:"category"`
}

var challengeCatalog = []Challenge{
	{ID: 1, Title: "Drink 8 glasses of water today", Points: 10, Category: "Hydration"},
	{ID: 2, Title: "Do a 15-minute yoga session", Points: 15, Category: "Exercise"},
	{ID: 3, Title: "Meditate for 10 minutes", Points: 10, Category: "Mental Health"},
	{ID: 4, Title: "Eat 5 servings of fruits and vegetables", Points: 20, Category: "Nutrition"},
	{ID: 5, Title: "Get 8 hours of sleep tonight", Points: 15, Category: "Sleep"},
	{ID: 6, Title: "Take a 20-minute walk", Points: 10, Category: "Exercise"},
	{ID: 7, Title: "Write in a gratitude journal", Points: 10, Category: "Mental Health"},
	{ID: 8, Title: "Try a new healthy recipe", Points: 20, Category: "Nutrition"},
	{ID: 9, Title: "Do a 10-minute stretching routine", Points: 10, Category: "Exercise"},
	{ID: 10, Title: "Practice deep breathing for 5 minutes", Points: 5, Category: "Stress Relief"},
}

type ChallengeRepository interface {
	RecordCompletion(completion *models.ChallengeCompletion) (bool, error)
	ListByUserDay(userID uint, day string) ([]models.ChallengeCompletion, error)
}

type ChallengePointsReader interface {
	FindByID(userID uint) (models.User, error)
}

type ChallengeBoard struct {
	Points    int         `json:"points"`
	Active    []Challenge `json:"active"`
	Completed []Challenge `json:"completed_today"`
}

type ChallengeService struct {
	completions ChallengeRepository
	users       ChallengePointsReader
	log         *logger.Logger
	shuffle     func(n int, swap func(i, j int))
}

func NewChallengeService(completions ChallengeRepository, users ChallengePointsReader, log *logger.Logger) *ChallengeService {
	if log == nil {
		log = logger.Nop()
	}
	return &ChallengeService{completions: completions, users: users, log: log, shuffle: rand.Shuffle}
}

func Challenges() []Challenge {
	return slices.Clone(challengeCatalog)
}

func FindChallenge(id int) (Challenge, bool) {
	index := slices.IndexFunc(challengeCatalog, func(challenge Challenge) bool {
		return challenge.ID == id
	})
	if index < 0 {
		return Challenge{}, false
	}
	return challengeCatalog[index], true
}

// Draw picks up to n distinct challenges that are not in exclude.
func (service *ChallengeService) Draw(n int, exclude ...int) []Challenge {
	if n <= 0 {
		n = DefaultChallengeDraw
	}
	pool := slices.DeleteFunc(Challenges(), func(challenge Challenge) bool {
		return slices.Contains(exclude, challenge.ID)
	})
	service.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// Board returns the user's point balance, a fresh draw, and the challenges
// already completed on the local day of now.
func (service *ChallengeService) Board(userID uint, n int, now time.Time) (ChallengeBoard, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ChallengeBoard{}, err
	}
	completions, err := service.completions.ListByUserDay(userID, CalendarDateOf(now).String())
	if err != nil {
		return ChallengeBoard{}, err
	}

	completed := make([]Challenge, 0, len(completions))
	completedIDs := make([]int, 0, len(completions))
	for _, completion := range completions {
		if challenge, ok := FindChallenge(completion.ChallengeID); ok {
			completed = append(completed, challenge)
			completedIDs = append(completedIDs, challenge.ID)
		}
	}

	return ChallengeBoard{
		Points:    user.Points,
		Active:    service.Draw(n, completedIDs...),
		Completed: completed,
	}, nil
}

// Complete awards the challenge points once per user and calendar day and
// returns the updated balance.
func (service *ChallengeService) Complete(userID uint, challengeID int, now time.Time) (int, error) {
	challenge, ok := FindChallenge(challengeID)
	if !ok {
		return 0, ErrChallengeNotFound
	}

	recorded, err := service.completions.RecordCompletion(&models.ChallengeCompletion{
		UserID:      userID,
		ChallengeID: challenge.ID,
		Day:         CalendarDateOf(now).String(),
		Points:      challenge.Points,
		CreatedAt:   now,
	})
	if err != nil {
		return 0, err
	}
	if !recorded {
		return 0, ErrChallengeAlreadyCompleted
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return 0, err
	}
	service.log.Info("challenge completed", "user_id", userID, "challenge_id", challenge.ID, "points", challenge.Points)
	return user.Points, nil
}

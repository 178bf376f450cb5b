package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users       map[uint]models.User
	nextID      uint
	updateErr   error
	deleted     []uint
	cycleWrites int
}

func newStubUserRepo(users ...models.User) *stubUserRepo {
	repo := &stubUserRepo{users: map[uint]models.User{}, nextID: 1}
	for _, user := range users {
		repo.users[user.ID] = user
		repo.nextID = max(repo.nextID, user.ID+1)
	}
	return repo
}

func (repo *stubUserRepo) FindByID(userID uint) (models.User, error) {
	user, ok := repo.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (repo *stubUserRepo) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *stubUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := repo.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (repo *stubUserRepo) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.ID] = *user
	return nil
}

func (repo *stubUserRepo) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	user, ok := repo.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = passwordHash
	user.MustChangePassword = mustChangePassword
	repo.users[userID] = user
	return nil
}

func (repo *stubUserRepo) UpdateCycleProfile(userID uint, cycleLength int, periodLength int, lastPeriodStart time.Time) error {
	repo.cycleWrites++
	if repo.updateErr != nil {
		return repo.updateErr
	}
	user := repo.users[userID]
	user.CycleLength = cycleLength
	user.PeriodLength = periodLength
	user.LastPeriodStart = &lastPeriodStart
	repo.users[userID] = user
	return nil
}

func (repo *stubUserRepo) DeleteAccountAndRelatedData(userID uint) error {
	delete(repo.users, userID)
	repo.deleted = append(repo.deleted, userID)
	return nil
}

type stubMoodRepo struct {
	entries   []models.MoodEntry
	createErr error
	lastFrom  *time.Time
	lastTo    *time.Time
}

func (repo *stubMoodRepo) Create(entry *models.MoodEntry) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	entry.ID = uint(len(repo.entries) + 1)
	repo.entries = append(repo.entries, *entry)
	return nil
}

func (repo *stubMoodRepo) ListRecent(userID uint, limit int) ([]models.MoodEntry, error) {
	result := []models.MoodEntry{}
	for index := len(repo.entries) - 1; index >= 0 && len(result) < limit; index-- {
		if repo.entries[index].UserID == userID {
			result = append(result, repo.entries[index])
		}
	}
	return result, nil
}

func (repo *stubMoodRepo) ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error) {
	repo.lastFrom, repo.lastTo = from, to
	result := []models.MoodEntry{}
	for _, entry := range repo.entries {
		if entry.UserID != userID {
			continue
		}
		if from != nil && entry.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !entry.CreatedAt.Before(*to) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

type stubSurveyRepo struct {
	surveys    map[uint]models.HealthSurvey
	replaceErr error
}

func (repo *stubSurveyRepo) FindByUser(userID uint) (models.HealthSurvey, bool, error) {
	survey, ok := repo.surveys[userID]
	return survey, ok, nil
}

func (repo *stubSurveyRepo) Replace(survey *models.HealthSurvey) error {
	if repo.replaceErr != nil {
		return repo.replaceErr
	}
	if repo.surveys == nil {
		repo.surveys = map[uint]models.HealthSurvey{}
	}
	repo.surveys[survey.UserID] = *survey
	return nil
}

type stubChallengeRepo struct {
	users       *stubUserRepo
	completions []models.ChallengeCompletion
}

func (repo *stubChallengeRepo) RecordCompletion(completion *models.ChallengeCompletion) (bool, error) {
	for _, existing := range repo.completions {
		if existing.UserID == completion.UserID && existing.ChallengeID == completion.ChallengeID && existing.Day == completion.Day {
			return false, nil
		}
	}
	repo.completions = append(repo.completions, *completion)
	user := repo.users.users[completion.UserID]
	user.Points += completion.Points
	repo.users.users[completion.UserID] = user
	return true, nil
}

func (repo *stubChallengeRepo) ListByUserDay(userID uint, day string) ([]models.ChallengeCompletion, error) {
	result := []models.ChallengeCompletion{}
	for _, completion := range repo.completions {
		if completion.UserID == userID && completion.Day == day {
			result = append(result, completion)
		}
	}
	return result, nil
}

type stubFeedbackRepo struct {
	entries []models.Feedback
}

func (repo *stubFeedbackRepo) Create(entry *models.Feedback) error {
	entry.ID = uint(len(repo.entries) + 1)
	repo.entries = append(repo.entries, *entry)
	return nil
}

var errStubWrite = errors.New("disk full")

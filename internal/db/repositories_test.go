package db

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/terraincognita07/luna/internal/models"
)

func TestHealthSurveyReplaceOverwritesPreviousSubmission(t *testing.T) {
	repos := NewRepositories(openTestDatabase(t, filepath.Join(t.TempDir(), "luna-survey.db")))
	user := createTestUser(t, repos, "survey@example.com")

	first := models.HealthSurvey{
		UserID:           user.ID,
		Age:              24,
		Regularity:       "regular",
		PrimarySymptom:   "cramps",
		PainLevel:        8,
		SelectedSymptoms: []string{"cramps", "headache"},
		UpdatedAt:        time.Now().UTC(),
	}
	if err := repos.Surveys.Replace(&first); err != nil {
		t.Fatalf("first Replace() error: %v", err)
	}

	second := models.HealthSurvey{
		UserID:           user.ID,
		Age:              25,
		Regularity:       "irregular",
		PrimarySymptom:   "none",
		PainLevel:        2,
		SelectedSymptoms: []string{"acne"},
		UpdatedAt:        time.Now().UTC(),
	}
	if err := repos.Surveys.Replace(&second); err != nil {
		t.Fatalf("second Replace() error: %v", err)
	}

	stored, found, err := repos.Surveys.FindByUser(user.ID)
	if err != nil || !found {
		t.Fatalf("FindByUser() found=%v err=%v", found, err)
	}
	if stored.Age != 25 || stored.Regularity != "irregular" || stored.PainLevel != 2 {
		t.Fatalf("expected second submission to win, got %+v", stored)
	}
	if len(stored.SelectedSymptoms) != 1 || stored.SelectedSymptoms[0] != "acne" {
		t.Fatalf("expected selected symptoms [acne], got %v", stored.SelectedSymptoms)
	}

	var rows int64
	if err := repos.Surveys.database.Model(&models.HealthSurvey{}).Where("user_id = ?", user.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count surveys: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected exactly one survey row, got %d", rows)
	}
}

func TestChallengeCompletionCreditsPointsOncePerDay(t *testing.T) {
	repos := NewRepositories(openTestDatabase(t, filepath.Join(t.TempDir(), "luna-challenges.db")))
	user := createTestUser(t, repos, "points@example.com")

	completion := func(day string) *models.ChallengeCompletion {
		return &models.ChallengeCompletion{UserID: user.ID, ChallengeID: 2, Day: day, Points: 15, CreatedAt: time.Now().UTC()}
	}

	recorded, err := repos.Challenges.RecordCompletion(completion("2025-03-01"))
	if err != nil || !recorded {
		t.Fatalf("first RecordCompletion() recorded=%v err=%v", recorded, err)
	}
	recorded, err = repos.Challenges.RecordCompletion(completion("2025-03-01"))
	if err != nil {
		t.Fatalf("second RecordCompletion() error: %v", err)
	}
	if recorded {
		t.Fatal("expected duplicate completion on the same day to be rejected")
	}
	if _, err := repos.Challenges.RecordCompletion(completion("2025-03-02")); err != nil {
		t.Fatalf("next-day RecordCompletion() error: %v", err)
	}

	reloaded, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if reloaded.Points != 30 {
		t.Fatalf("expected 30 points, got %d", reloaded.Points)
	}

	today, err := repos.Challenges.ListByUserDay(user.ID, "2025-03-01")
	if err != nil {
		t.Fatalf("ListByUserDay() error: %v", err)
	}
	if len(today) != 1 {
		t.Fatalf("expected 1 completion on 2025-03-01, got %d", len(today))
	}
}

func TestChallengeCompletionConcurrentDuplicatesRecordOnce(t *testing.T) {
	repos := NewRepositories(openTestDatabase(t, filepath.Join(t.TempDir(), "luna-challenges-race.db")))
	user := createTestUser(t, repos, "race@example.com")

	const attempts = 6
	var (
		wait     sync.WaitGroup
		mu       sync.Mutex
		recorded int
		failures []error
	)
	for range attempts {
		wait.Add(1)
		go func() {
			defer wait.Done()
			ok, err := repos.Challenges.RecordCompletion(&models.ChallengeCompletion{
				UserID:      user.ID,
				ChallengeID: 4,
				Day:         "2025-03-01",
				Points:      20,
				CreatedAt:   time.Now().UTC(),
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
			}
			if ok {
				recorded++
			}
		}()
	}
	wait.Wait()

	if len(failures) != 0 {
		t.Fatalf("expected duplicates to be reported without error, got %v", failures)
	}
	if recorded != 1 {
		t.Fatalf("expected exactly one recorded completion, got %d", recorded)
	}
	reloaded, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if reloaded.Points != 20 {
		t.Fatalf("expected 20 points, got %d", reloaded.Points)
	}
}

func TestMoodRepositoryRangeIsChronologicalAndExclusive(t *testing.T) {
	repos := NewRepositories(openTestDatabase(t, filepath.Join(t.TempDir(), "luna-moods.db")))
	user := createTestUser(t, repos, "moods@example.com")

	base := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)
	for offset := range 3 {
		entry := &models.MoodEntry{
			UserID:    user.ID,
			Energy:    "high",
			Comfort:   "good",
			Emotion:   "happy",
			MoodTitle: "You're Feeling Great!",
			CreatedAt: base.AddDate(0, 0, offset),
		}
		if err := repos.Moods.Create(entry); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	from := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)
	entries, err := repos.Moods.ListByUserRange(user.ID, &from, &to)
	if err != nil {
		t.Fatalf("ListByUserRange() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in range, got %d", len(entries))
	}
	if !entries[0].CreatedAt.Before(entries[1].CreatedAt) {
		t.Fatal("expected chronological order")
	}

	recent, err := repos.Moods.ListRecent(user.ID, 1)
	if err != nil {
		t.Fatalf("ListRecent() error: %v", err)
	}
	if len(recent) != 1 || !recent[0].CreatedAt.Equal(base.AddDate(0, 0, 2)) {
		t.Fatalf("expected newest entry first, got %+v", recent)
	}
}

func TestDeleteAccountDetachesFeedback(t *testing.T) {
	repos := NewRepositories(openTestDatabase(t, filepath.Join(t.TempDir(), "luna-delete.db")))
	user := createTestUser(t, repos, "delete@example.com")

	feedback := &models.Feedback{UserID: &user.ID, Name: "Ana", Email: "ana@example.com", Rating: 5, Message: "Love it", CreatedAt: time.Now().UTC()}
	if err := repos.Feedback.Create(feedback); err != nil {
		t.Fatalf("Create feedback error: %v", err)
	}
	if err := repos.Moods.Create(&models.MoodEntry{UserID: user.ID, Energy: "low", Comfort: "good", Emotion: "sad", MoodTitle: "x", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("Create mood error: %v", err)
	}

	if err := repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		t.Fatalf("DeleteAccountAndRelatedData() error: %v", err)
	}

	if _, err := repos.Users.FindByID(user.ID); err == nil {
		t.Fatal("expected user to be deleted")
	}
	var stored models.Feedback
	if err := repos.Feedback.database.First(&stored, feedback.ID).Error; err != nil {
		t.Fatalf("expected feedback to survive account deletion: %v", err)
	}
	if stored.UserID != nil {
		t.Fatalf("expected feedback to become anonymous, got user id %d", *stored.UserID)
	}
	moods, err := repos.Moods.ListRecent(user.ID, 0)
	if err != nil {
		t.Fatalf("ListRecent() error: %v", err)
	}
	if len(moods) != 0 {
		t.Fatalf("expected moods to be deleted, got %d", len(moods))
	}
}

func createTestUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "hash",
		Role:         models.RoleOwner,
		CycleLength:  models.DefaultCycleLength,
		PeriodLength: models.DefaultPeriodLength,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

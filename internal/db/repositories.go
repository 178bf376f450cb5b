package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Moods      *MoodRepository
	Surveys    *HealthSurveyRepository
	Feedback   *FeedbackRepository
	Challenges *ChallengeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Moods:      NewMoodRepository(database),
		Surveys:    NewHealthSurveyRepository(database),
		Feedback:   NewFeedbackRepository(database),
		Challenges: NewChallengeRepository(database),
	}
}

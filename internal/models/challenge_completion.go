package models

import "time"

type ChallengeCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_challenge_completion_day" json:"-"`
	ChallengeID int       `gorm:"not null;uniqueIndex:idx_challenge_completion_day" json:"challenge_id"`
	Day         string    `gorm:"not null;uniqueIndex:idx_challenge_completion_day" json:"day"`
	Points      int       `gorm:"not null" json:"points"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

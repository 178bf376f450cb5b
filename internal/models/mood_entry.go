package models

import "time"

type MoodEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Energy    string    `gorm:"not null" json:"energy"`
	Comfort   string    `gorm:"not null" json:"comfort"`
	Emotion   string    `gorm:"not null" json:"emotion"`
	MoodTitle string    `gorm:"not null" json:"mood_title"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

package models

import "time"

type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Rating    int       `gorm:"not null" json:"rating"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

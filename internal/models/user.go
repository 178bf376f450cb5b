package models

import "time"

const (
	RoleOwner = "owner"

	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName        string     `gorm:"not null;default:''" json:"display_name"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	Role               string     `gorm:"not null;default:owner" json:"role"`
	MustChangePassword bool       `gorm:"not null;default:false" json:"-"`
	Points             int        `gorm:"not null;default:0" json:"points"`
	CycleLength        int        `gorm:"not null;default:28" json:"cycle_length"`
	PeriodLength       int        `gorm:"not null;default:5" json:"period_length"`
	LastPeriodStart    *time.Time `json:"last_period_start,omitempty"`
	CreatedAt          time.Time  `gorm:"not null" json:"created_at"`
}

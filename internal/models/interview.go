package models

import "time"

type Interview struct {
	BaseModel
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Company     string          `gorm:"not null" json:"company"`
	Role        string          `gorm:"not null" json:"role"`
	Salary      string          `json:"salary"`
	ScheduledAt time.Time       `gorm:"not null;index" json:"scheduled_at"`
	Notes       string          `json:"notes"`
	Status      InterviewStatus `gorm:"type:varchar(20);not null;default:'upcoming';index" json:"status"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

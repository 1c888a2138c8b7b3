package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReminderLog records a successfully delivered reminder email. The composite
// unique index on (interview_id, reminder_type) is the de-duplication guard:
// inserting a second log for the same pair fails at the database, so repeated
// dispatcher runs never double-send.
type ReminderLog struct {
	BaseModel
	InterviewID  string         `gorm:"type:uuid;not null;uniqueIndex:ux_reminder_interview_type,priority:1" json:"interview_id"`
	ReminderType ReminderType   `gorm:"type:varchar(20);not null;uniqueIndex:ux_reminder_interview_type,priority:2" json:"reminder_type"`
	SentAt       time.Time      `gorm:"not null" json:"sent_at"`
	Data         datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"company": "...", "role": "...", "scheduled_at": "..."}

	Interview Interview `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"-"`
}

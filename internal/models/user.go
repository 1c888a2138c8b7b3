package models

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// UserProfile carries the optional contact details shown on the settings
// page. The phone number is display/opt-in only, nothing dispatches SMS yet.
type UserProfile struct {
	BaseModel
	UserID string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Phone  *string `json:"phone,omitempty"`
}

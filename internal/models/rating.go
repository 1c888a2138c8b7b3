package models

// InterviewRating is a user's self-evaluation of one interview across nine
// fixed categories. Overall is computed server-side as the arithmetic mean
// of the nine scores, rounded to two decimals. One rating per interview.
type InterviewRating struct {
	BaseModel
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	InterviewID string `gorm:"type:uuid;not null;uniqueIndex" json:"interview_id"`

	Technical        int `gorm:"not null;check:technical >= 1 AND technical <= 5" json:"technical"`
	Managerial       int `gorm:"not null;check:managerial >= 1 AND managerial <= 5" json:"managerial"`
	Projects         int `gorm:"not null;check:projects >= 1 AND projects <= 5" json:"projects"`
	SelfIntroduction int `gorm:"not null;check:self_introduction >= 1 AND self_introduction <= 5" json:"self_introduction"`
	HRRound          int `gorm:"column:hr_round;not null;check:hr_round >= 1 AND hr_round <= 5" json:"hr_round"`
	DressUp          int `gorm:"not null;check:dress_up >= 1 AND dress_up <= 5" json:"dress_up"`
	Communication    int `gorm:"not null;check:communication >= 1 AND communication <= 5" json:"communication"`
	BodyLanguage     int `gorm:"not null;check:body_language >= 1 AND body_language <= 5" json:"body_language"`
	Punctuality      int `gorm:"not null;check:punctuality >= 1 AND punctuality <= 5" json:"punctuality"`

	Overall  float64 `gorm:"not null" json:"overall"`
	Feedback string  `json:"feedback"`

	Interview Interview `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"-"`
}

// CategoryScores returns the nine category values keyed by their JSON names.
// Iteration order is not stable; callers that need ordered output should use
// RatingCategories.
func (r *InterviewRating) CategoryScores() map[string]int {
	return map[string]int{
		"technical":         r.Technical,
		"managerial":        r.Managerial,
		"projects":          r.Projects,
		"self_introduction": r.SelfIntroduction,
		"hr_round":          r.HRRound,
		"dress_up":          r.DressUp,
		"communication":     r.Communication,
		"body_language":     r.BodyLanguage,
		"punctuality":       r.Punctuality,
	}
}

// RatingCategories lists the nine category keys in display order.
var RatingCategories = []string{
	"technical",
	"managerial",
	"projects",
	"self_introduction",
	"hr_round",
	"dress_up",
	"communication",
	"body_language",
	"punctuality",
}

package dto

type CreateRatingRequest struct {
	InterviewID string `json:"interview_id" validate:"required,uuid4"`

	Technical        int `json:"technical" validate:"required,min=1,max=5"`
	Managerial       int `json:"managerial" validate:"required,min=1,max=5"`
	Projects         int `json:"projects" validate:"required,min=1,max=5"`
	SelfIntroduction int `json:"self_introduction" validate:"required,min=1,max=5"`
	HRRound          int `json:"hr_round" validate:"required,min=1,max=5"`
	DressUp          int `json:"dress_up" validate:"required,min=1,max=5"`
	Communication    int `json:"communication" validate:"required,min=1,max=5"`
	BodyLanguage     int `json:"body_language" validate:"required,min=1,max=5"`
	Punctuality      int `json:"punctuality" validate:"required,min=1,max=5"`

	Feedback string `json:"feedback" validate:"max=5000"`
}

// RatingSummary is the aggregator output: per-category averages, the
// average of the per-rating overall scores, and the rating count.
type RatingSummary struct {
	Count      int64              `json:"count"`
	Overall    float64            `json:"overall"`
	Categories map[string]float64 `json:"categories"`
}

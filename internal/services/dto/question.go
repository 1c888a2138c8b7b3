package dto

import "intervue_backend/internal/ai"

type GenerateQuestionsRequest struct {
	Role         string `json:"role" validate:"required,min=2,max=200"`
	Company      string `json:"company" validate:"max=200"`
	QuestionType string `json:"question_type" validate:"omitempty,oneof=technical behavioral hr mixed"`
}

// GenerateQuestionsResponse always carries questions; Source tells whether
// they came from the model or the canned fallback.
type GenerateQuestionsResponse struct {
	Questions []ai.Question `json:"questions"`
	Source    string        `json:"source"` // "model" or "fallback"
}

package validator

import (
	"intervue_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the project-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("interview_status", func(fl validator.FieldLevel) bool {
		return models.InterviewStatus(fl.Field().String()).Valid()
	})
}

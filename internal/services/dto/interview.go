package dto

import "time"

type CreateInterviewRequest struct {
	Company     string    `json:"company" validate:"required,min=1,max=200"`
	Role        string    `json:"role" validate:"required,min=1,max=200"`
	Salary      string    `json:"salary" validate:"max=50"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes" validate:"max=5000"`
}

// UpdateInterviewRequest uses pointers so absent fields are left untouched.
// A status change goes through the transition check, it is not a raw
// field overwrite.
type UpdateInterviewRequest struct {
	Company     *string    `json:"company" validate:"omitempty,min=1,max=200"`
	Role        *string    `json:"role" validate:"omitempty,min=1,max=200"`
	Salary      *string    `json:"salary" validate:"omitempty,max=50"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       *string    `json:"notes" validate:"omitempty,max=5000"`
	Status      *string    `json:"status" validate:"omitempty,interview_status"`
}

// CompleteInterviewRequest is the "mark completed" dialog payload: the
// caller must pick a concrete outcome, ambiguity is not accepted.
type CompleteInterviewRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=succeeded rejected"`
}

type InterviewListQuery struct {
	Status string `form:"status" validate:"omitempty,interview_status"`
}

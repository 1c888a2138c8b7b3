package models

type InterviewStatus string
type ReminderType string

const (
	InterviewStatusUpcoming  InterviewStatus = "upcoming"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusSucceeded InterviewStatus = "succeeded"
	InterviewStatusRejected  InterviewStatus = "rejected"

	ReminderOneDayBefore  ReminderType = "one_day_before"
	ReminderOneHourBefore ReminderType = "one_hour_before"
)

// interviewTransitions describes which status moves are legal.
// upcoming can be closed out with an explicit outcome or marked completed
// first; completed still needs an outcome; succeeded/rejected are terminal.
var interviewTransitions = map[InterviewStatus][]InterviewStatus{
	InterviewStatusUpcoming:  {InterviewStatusCompleted, InterviewStatusSucceeded, InterviewStatusRejected},
	InterviewStatusCompleted: {InterviewStatusSucceeded, InterviewStatusRejected},
	InterviewStatusSucceeded: {},
	InterviewStatusRejected:  {},
}

func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewStatusUpcoming, InterviewStatusCompleted,
		InterviewStatusSucceeded, InterviewStatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether moving from one status to another is legal.
// A same-status write is treated as a no-op edit and is always allowed.
func CanTransition(from, to InterviewStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, allowed := range interviewTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (t ReminderType) Valid() bool {
	return t == ReminderOneDayBefore || t == ReminderOneHourBefore
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    InterviewStatus
		to      InterviewStatus
		allowed bool
	}{
		{"upcoming to completed", InterviewStatusUpcoming, InterviewStatusCompleted, true},
		{"upcoming to succeeded", InterviewStatusUpcoming, InterviewStatusSucceeded, true},
		{"upcoming to rejected", InterviewStatusUpcoming, InterviewStatusRejected, true},
		{"completed to succeeded", InterviewStatusCompleted, InterviewStatusSucceeded, true},
		{"completed to rejected", InterviewStatusCompleted, InterviewStatusRejected, true},
		{"completed back to upcoming", InterviewStatusCompleted, InterviewStatusUpcoming, false},
		{"succeeded is terminal", InterviewStatusSucceeded, InterviewStatusCompleted, false},
		{"succeeded to rejected", InterviewStatusSucceeded, InterviewStatusRejected, false},
		{"rejected is terminal", InterviewStatusRejected, InterviewStatusUpcoming, false},
		{"rejected to succeeded", InterviewStatusRejected, InterviewStatusSucceeded, false},
		{"same status is a no-op", InterviewStatusSucceeded, InterviewStatusSucceeded, true},
		{"unknown target", InterviewStatusUpcoming, InterviewStatus("archived"), false},
		{"unknown source", InterviewStatus("draft"), InterviewStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestInterviewStatusValid(t *testing.T) {
	for _, s := range []InterviewStatus{
		InterviewStatusUpcoming,
		InterviewStatusCompleted,
		InterviewStatusSucceeded,
		InterviewStatusRejected,
	} {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	assert.False(t, InterviewStatus("").Valid())
	assert.False(t, InterviewStatus("pending").Valid())
}

func TestReminderTypeValid(t *testing.T) {
	assert.True(t, ReminderOneDayBefore.Valid())
	assert.True(t, ReminderOneHourBefore.Valid())
	assert.False(t, ReminderType("one_week_before").Valid())
}

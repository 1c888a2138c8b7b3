package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervue_backend/internal/models"
	"intervue_backend/test/helpers"
)

func TestInterviewCRUD(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "crud-user")

	createBody := map[string]interface{}{
		"company":      "Harbor Analytics",
		"role":         "Full Stack Engineer",
		"salary":       "$140k",
		"scheduled_at": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"notes":        "Bring portfolio",
	}

	createRes, createBodyStr := ts.SendRequest(t, "POST", "/api/v1/interviews", token, createBody)
	require.Equal(t, http.StatusCreated, createRes.StatusCode, createBodyStr)

	var created models.Interview
	require.NoError(t, json.Unmarshal([]byte(createBodyStr), &created))
	assert.Equal(t, models.InterviewStatusUpcoming, created.Status)

	getRes, getBodyStr := ts.SendRequest(t, "GET", "/api/v1/interviews/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBodyStr, "Harbor Analytics")

	updRes, updBodyStr := ts.SendRequest(t, "PATCH", "/api/v1/interviews/"+created.ID, token, map[string]interface{}{
		"notes": "Panel of three",
	})
	assert.Equal(t, http.StatusOK, updRes.StatusCode)
	assert.Contains(t, updBodyStr, "Panel of three")
	assert.Contains(t, updBodyStr, "Harbor Analytics") // untouched fields survive

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/interviews/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, delRes.StatusCode)

	goneRes, _ := ts.SendRequest(t, "GET", "/api/v1/interviews/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, goneRes.StatusCode)
}

func TestInterviewOwnershipIsolation(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, ownerID := helpers.RegisterAndLogin(t, ts, "owner")
	strangerToken, _ := helpers.RegisterAndLogin(t, ts, "stranger")

	interview := helpers.CreateInterview(t, ts.DB, ownerID, models.InterviewStatusUpcoming, time.Now().Add(72*time.Hour))

	res, _ := ts.SendRequest(t, "GET", "/api/v1/interviews/"+interview.ID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "foreign interviews look like they do not exist")

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/interviews/"+interview.ID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, delRes.StatusCode)

	stillRes, _ := ts.SendRequest(t, "GET", "/api/v1/interviews/"+interview.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, stillRes.StatusCode)
}

// Listing sweeps stale upcoming interviews to completed before returning,
// so clients never see an upcoming interview whose time is already past.
func TestListSweepsExpiredInterviews(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := helpers.RegisterAndLogin(t, ts, "sweeper")

	stale := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, time.Now().Add(-2*time.Hour))
	fresh := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, time.Now().Add(2*time.Hour))
	terminal := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusSucceeded, time.Now().Add(-50*time.Hour))

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/interviews", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Interviews []models.Interview `json:"interviews"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	require.Len(t, payload.Interviews, 3)

	statusByID := map[string]models.InterviewStatus{}
	for _, iv := range payload.Interviews {
		statusByID[iv.ID] = iv.Status
	}
	assert.Equal(t, models.InterviewStatusCompleted, statusByID[stale.ID], "past upcoming flips to completed")
	assert.Equal(t, models.InterviewStatusUpcoming, statusByID[fresh.ID])
	assert.Equal(t, models.InterviewStatusSucceeded, statusByID[terminal.ID], "terminal statuses are untouched")
}

func TestListStatusFilter(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := helpers.RegisterAndLogin(t, ts, "filter-user")

	helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, time.Now().Add(24*time.Hour))
	helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusRejected, time.Now().Add(-80*time.Hour))

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/interviews?status=rejected", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Interviews []models.Interview `json:"interviews"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	require.Len(t, payload.Interviews, 1)
	assert.Equal(t, models.InterviewStatusRejected, payload.Interviews[0].Status)

	badRes, _ := ts.SendRequest(t, "GET", "/api/v1/interviews?status=archived", token, nil)
	assert.Equal(t, http.StatusBadRequest, badRes.StatusCode)
}

func TestCompleteInterview(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := helpers.RegisterAndLogin(t, ts, "closer")

	interview := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusCompleted, time.Now().Add(-3*time.Hour))

	res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/interviews/%s/complete", interview.ID), token, map[string]interface{}{
		"outcome": "succeeded",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"status":"succeeded"`)

	// Terminal: a second outcome change is rejected.
	again, againBody := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/interviews/%s/complete", interview.ID), token, map[string]interface{}{
		"outcome": "rejected",
	})
	assert.Equal(t, http.StatusConflict, again.StatusCode, againBody)

	// Outcome must be a terminal status.
	bad, _ := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/interviews/%s/complete", interview.ID), token, map[string]interface{}{
		"outcome": "completed",
	})
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestUpdateStatusTransitionGuard(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := helpers.RegisterAndLogin(t, ts, "fsm-user")

	interview := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusSucceeded, time.Now().Add(-30*time.Hour))

	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/v1/interviews/"+interview.ID, token, map[string]interface{}{
		"status": "upcoming",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Illegal status transition")

	// Setting the current status again is a no-op, not an error.
	noop, _ := ts.SendRequest(t, "PATCH", "/api/v1/interviews/"+interview.ID, token, map[string]interface{}{
		"status": "succeeded",
	})
	assert.Equal(t, http.StatusOK, noop.StatusCode)
}

package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervue_backend/internal/models"
	"intervue_backend/test/helpers"
)

func TestDashboard(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := helpers.RegisterAndLogin(t, ts, "dash-user")

	now := time.Now().UTC()
	helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(48*time.Hour))
	helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(10*24*time.Hour))
	helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusSucceeded, now.Add(-10*time.Hour))
	rated := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusCompleted, now.Add(-5*time.Hour))

	res, _ := ts.SendRequest(t, "POST", "/api/v1/ratings", token, ratingBody(rated.ID))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	dashRes, dashBody := ts.SendRequest(t, "GET", "/api/v1/analytics/dashboard", token, nil)
	require.Equal(t, http.StatusOK, dashRes.StatusCode)

	var dash struct {
		Total             int64            `json:"total"`
		ByStatus          map[string]int64 `json:"by_status"`
		UpcomingNext7Days int64            `json:"upcoming_next_7_days"`
		Ratings           struct {
			Count   int64   `json:"count"`
			Overall float64 `json:"overall"`
		} `json:"ratings"`
	}
	require.NoError(t, json.Unmarshal([]byte(dashBody), &dash))

	assert.Equal(t, int64(4), dash.Total)
	assert.Equal(t, int64(2), dash.ByStatus["upcoming"])
	assert.Equal(t, int64(1), dash.ByStatus["completed"])
	assert.Equal(t, int64(1), dash.ByStatus["succeeded"])
	assert.Equal(t, int64(0), dash.ByStatus["rejected"])
	assert.Equal(t, int64(1), dash.UpcomingNext7Days, "only the 48h interview falls inside the week")
	assert.Equal(t, int64(1), dash.Ratings.Count)
	assert.Equal(t, 4.22, dash.Ratings.Overall)
}

func TestDashboardEmpty(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "empty-dash")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/dashboard", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var dash struct {
		Total    int64            `json:"total"`
		ByStatus map[string]int64 `json:"by_status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &dash))
	assert.Equal(t, int64(0), dash.Total)
	assert.Len(t, dash.ByStatus, 4, "all statuses present even when zero")
}

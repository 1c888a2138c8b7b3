package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"intervue_backend/internal/models"
)

// RegisterAndLogin creates a user through the public API and returns an
// access token plus the user id. Emails get a uuid suffix so tests do not
// collide on the unique index.
func RegisterAndLogin(t *testing.T, ts *TestServer, name string) (token string, userID string) {
	email := fmt.Sprintf("%s-%s@test.local", name, uuid.NewString()[:8])
	password := "super_password123"

	regRes, regBody := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if regRes.StatusCode != http.StatusCreated {
		t.Fatalf("Registration failed (%d): %s", regRes.StatusCode, regBody)
	}

	logRes, logBody := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if logRes.StatusCode != http.StatusOK {
		t.Fatalf("Login failed (%d): %s", logRes.StatusCode, logBody)
	}

	var login struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(logBody), &login); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}

	return login.AccessToken, login.User.ID
}

// CreateInterview inserts an interview directly, bypassing the API, so
// tests can control scheduled_at and status freely.
func CreateInterview(t *testing.T, db *gorm.DB, userID string, status models.InterviewStatus, scheduledAt time.Time) models.Interview {
	interview := models.Interview{
		UserID:      userID,
		Company:     "Nimbus Labs",
		Role:        "Backend Engineer",
		ScheduledAt: scheduledAt,
		Status:      status,
	}
	if err := db.Create(&interview).Error; err != nil {
		t.Fatalf("Failed to create test interview: %v", err)
	}
	return interview
}

package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"intervue_backend/internal/app"
	"intervue_backend/internal/config"
	"intervue_backend/internal/models"
	"intervue_backend/ws"
)

// TestServer bundles the httptest server with its database handle.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Hub    *ws.Hub
}

// NewTestServer connects to the test database named by DATABASE_URL,
// migrates the schema, and starts the full router on httptest. Background
// workers are not started; tests drive the sweeps explicitly.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to the test database (%s): %v", dsn, err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Interview{},
		&models.InterviewRating{},
		&models.ReminderLog{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed for the test database: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run(context.Background())
	serviceContainer := app.InitializeServices(cfg, db, hub)
	router := app.SetupRouter(serviceContainer, hub)

	server := httptest.NewServer(router)
	log.Printf("Test server started against %s", dsn)

	return &TestServer{
		Server: server,
		DB:     db,
		Hub:    hub,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables truncates all application tables.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec("TRUNCATE TABLE users, user_profiles, interviews, interview_ratings, reminder_logs RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("Failed to clear tables: %v", err)
	}
}

// SendRequest performs an HTTP call against the test server and returns
// the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request JSON: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build HTTP request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return res, string(resBodyBytes)
}

package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"intervue_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first use.
// Tests are skipped when DATABASE_URL is not set.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}

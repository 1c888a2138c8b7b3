package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervue_backend/internal/models"
	"intervue_backend/test/helpers"
)

func wsURL(ts *helpers.TestServer, token string) string {
	return strings.Replace(ts.Server.URL, "http://", "ws://", 1) + "/ws?token=" + token
}

func TestWebSocketRequiresToken(t *testing.T) {
	ts := GetTestServer(t)

	_, res, err := websocket.DefaultDialer.Dial(strings.Replace(ts.Server.URL, "http://", "ws://", 1)+"/ws", nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestDeleteNotifiesConnectedClient(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := helpers.RegisterAndLogin(t, ts, "ws-user")

	interview := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, time.Now().Add(24*time.Hour))

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, token), nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the hub a moment to register the client before the delete.
	time.Sleep(100 * time.Millisecond)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/interviews/"+interview.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type        string `json:"type"`
		InterviewID string `json:"interview_id"`
	}
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, "interview_deleted", event.Type)
	assert.Equal(t, interview.ID, event.InterviewID)
}

// Other users' deletions do not leak into a client's event stream.
func TestDeleteEventScopedToOwner(t *testing.T) {
	ts := GetTestServer(t)
	listenerToken, _ := helpers.RegisterAndLogin(t, ts, "ws-listener")
	deleterToken, deleterID := helpers.RegisterAndLogin(t, ts, "ws-deleter")

	interview := helpers.CreateInterview(t, ts.DB, deleterID, models.InterviewStatusUpcoming, time.Now().Add(24*time.Hour))

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, listenerToken), nil)
	require.NoError(t, err)
	defer conn.Close()

	time.Sleep(100 * time.Millisecond)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/interviews/"+interview.ID, deleterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "the listener must not receive a foreign event")
}

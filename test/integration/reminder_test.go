package integration_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervue_backend/internal/email"
	"intervue_backend/internal/models"
	"intervue_backend/internal/repositories"
	"intervue_backend/internal/services"
	"intervue_backend/test/helpers"
)

// recordingProvider captures sent emails instead of talking to SMTP.
type recordingProvider struct {
	mu     sync.Mutex
	sent   []sentEmail
	fail   bool
}

type sentEmail struct {
	To       string
	Subject  string
	Template string
}

func (p *recordingProvider) Send(e *email.Email) error { return nil }

func (p *recordingProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("smtp unavailable")
	}
	p.sent = append(p.sent, sentEmail{To: to[0], Subject: subject, Template: templateName})
	return nil
}

func (p *recordingProvider) Validate() error { return nil }
func (p *recordingProvider) Close() error    { return nil }

func (p *recordingProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

func newReminderFixture(ts *helpers.TestServer, provider email.Provider) services.ReminderService {
	return services.NewReminderService(
		repositories.NewInterviewRepository(ts.DB),
		repositories.NewReminderRepository(ts.DB),
		provider,
		services.DefaultReminderConfig(),
	)
}

func TestReminderDispatchIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	_, userID := helpers.RegisterAndLogin(t, ts, "reminded")

	now := time.Now().UTC()
	// One interview in each window, one safely outside both.
	dayAhead := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(24*time.Hour))
	hourAhead := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(time.Hour))
	helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(6*time.Hour))

	provider := &recordingProvider{}
	svc := newReminderFixture(ts, provider)

	require.NoError(t, svc.Run(context.Background(), now))
	assert.Equal(t, 2, provider.count(), "one reminder per window")

	// A second pass over the same instant sends nothing new.
	require.NoError(t, svc.Run(context.Background(), now))
	assert.Equal(t, 2, provider.count(), "repeated runs never double-send")

	var logs []models.ReminderLog
	require.NoError(t, ts.DB.Where("interview_id IN ?", []string{dayAhead.ID, hourAhead.ID}).Find(&logs).Error)
	require.Len(t, logs, 2)
	types := map[string]models.ReminderType{}
	for _, l := range logs {
		types[l.InterviewID] = l.ReminderType
	}
	assert.Equal(t, models.ReminderOneDayBefore, types[dayAhead.ID])
	assert.Equal(t, models.ReminderOneHourBefore, types[hourAhead.ID])
}

func TestReminderSendFailureRetriesNextRun(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	_, userID := helpers.RegisterAndLogin(t, ts, "retry-user")

	now := time.Now().UTC()
	interview := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(time.Hour))

	provider := &recordingProvider{fail: true}
	svc := newReminderFixture(ts, provider)

	require.NoError(t, svc.Run(context.Background(), now))
	assert.Equal(t, 0, provider.count())

	var count int64
	require.NoError(t, ts.DB.Model(&models.ReminderLog{}).Where("interview_id = ?", interview.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "no log row without a confirmed send")

	// SMTP recovers; the next pass delivers.
	provider.fail = false
	require.NoError(t, svc.Run(context.Background(), now))
	assert.Equal(t, 1, provider.count())
}

func TestReminderRunPurgesStaleInterviews(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	_, userID := helpers.RegisterAndLogin(t, ts, "purged-user")

	now := time.Now().UTC()
	stale := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusCompleted, now.Add(-30*time.Hour))
	recent := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusCompleted, now.Add(-10*time.Hour))

	svc := newReminderFixture(ts, &recordingProvider{})
	require.NoError(t, svc.Run(context.Background(), now))

	var count int64
	require.NoError(t, ts.DB.Model(&models.Interview{}).Where("id = ?", stale.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "interviews past the purge horizon are removed")

	require.NoError(t, ts.DB.Model(&models.Interview{}).Where("id = ?", recent.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSweepOnlyTouchesExpiredUpcoming(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	_, userID := helpers.RegisterAndLogin(t, ts, "sweep-scope")

	repo := repositories.NewInterviewRepository(ts.DB)
	now := time.Now().UTC()

	expired := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(-time.Minute))
	future := helpers.CreateInterview(t, ts.DB, userID, models.InterviewStatusUpcoming, now.Add(time.Minute))

	// Empty user id means platform-wide, the worker's mode.
	swept, err := repo.CompleteExpired("", now)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, swept, int64(1))

	var stored models.Interview
	require.NoError(t, ts.DB.First(&stored, "id = ?", expired.ID).Error)
	assert.Equal(t, models.InterviewStatusCompleted, stored.Status)

	require.NoError(t, ts.DB.First(&stored, "id = ?", future.ID).Error)
	assert.Equal(t, models.InterviewStatusUpcoming, stored.Status)
}

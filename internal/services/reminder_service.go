package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"intervue_backend/internal/email"
	"intervue_backend/internal/logger"
	"intervue_backend/internal/models"
	"intervue_backend/internal/repositories"
)

// ReminderConfig holds the dispatcher timing knobs.
type ReminderConfig struct {
	// DayTolerance widens the 24h-ahead window on both sides to absorb
	// invocation jitter.
	DayTolerance time.Duration
	// HourTolerance does the same for the 1h-ahead window.
	HourTolerance time.Duration
	// PurgeAfter is how far past its scheduled time an interview may be
	// before the destructive sweep removes it.
	PurgeAfter time.Duration
}

func DefaultReminderConfig() ReminderConfig {
	return ReminderConfig{
		DayTolerance:  30 * time.Minute,
		HourTolerance: 15 * time.Minute,
		PurgeAfter:    24 * time.Hour,
	}
}

// ReminderWindow is one time range to scan for due reminders.
type ReminderWindow struct {
	Type     models.ReminderType
	From     time.Time
	To       time.Time
	Template string
	Subject  string
}

// ReminderWindows computes the two dispatch windows for a given instant:
// one centered 24 hours ahead and one centered 1 hour ahead.
func ReminderWindows(now time.Time, cfg ReminderConfig) []ReminderWindow {
	dayCenter := now.Add(24 * time.Hour)
	hourCenter := now.Add(1 * time.Hour)
	return []ReminderWindow{
		{
			Type:     models.ReminderOneDayBefore,
			From:     dayCenter.Add(-cfg.DayTolerance),
			To:       dayCenter.Add(cfg.DayTolerance),
			Template: email.TemplateReminderOneDay,
			Subject:  "Your interview is tomorrow",
		},
		{
			Type:     models.ReminderOneHourBefore,
			From:     hourCenter.Add(-cfg.HourTolerance),
			To:       hourCenter.Add(cfg.HourTolerance),
			Template: email.TemplateReminderOneHour,
			Subject:  "Your interview starts in one hour",
		},
	}
}

type ReminderService interface {
	// Run executes one dispatcher pass: purge stale interviews, then send
	// due reminders exactly once per (interview, type) pair.
	Run(ctx context.Context, now time.Time) error
}

type reminderServiceImpl struct {
	interviewRepo repositories.InterviewRepository
	reminderRepo  repositories.ReminderRepository
	emailProvider email.Provider
	cfg           ReminderConfig
}

func NewReminderService(
	interviewRepo repositories.InterviewRepository,
	reminderRepo repositories.ReminderRepository,
	emailProvider email.Provider,
	cfg ReminderConfig,
) ReminderService {
	return &reminderServiceImpl{
		interviewRepo: interviewRepo,
		reminderRepo:  reminderRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

func (s *reminderServiceImpl) Run(ctx context.Context, now time.Time) error {
	// Destructive sweep first: interviews more than PurgeAfter past their
	// scheduled time are gone for good, ratings and logs cascade with them.
	purged, err := s.interviewRepo.DeleteOlderThan(now.Add(-s.cfg.PurgeAfter))
	if err != nil {
		logger.CtxWithError(ctx, "reminder purge failed", err)
		// Keep going: reminders are independent of the purge.
	} else if purged > 0 {
		logger.CtxInfo(ctx, "purged stale interviews", "count", purged)
	}

	for _, window := range ReminderWindows(now, s.cfg) {
		if err := s.dispatchWindow(ctx, window, now); err != nil {
			logger.CtxWithError(ctx, "reminder window dispatch failed", err,
				"type", string(window.Type))
		}
	}

	return nil
}

func (s *reminderServiceImpl) dispatchWindow(ctx context.Context, window ReminderWindow, now time.Time) error {
	interviews, err := s.interviewRepo.FindUpcomingInWindow(window.From, window.To)
	if err != nil {
		return err
	}

	for i := range interviews {
		interview := &interviews[i]

		sent, err := s.reminderRepo.Exists(interview.ID, window.Type)
		if err != nil {
			logger.CtxWithError(ctx, "reminder dedup check failed", err,
				"interview_id", interview.ID)
			continue
		}
		if sent {
			continue
		}

		if interview.User.Email == "" {
			logger.CtxWarn(ctx, "interview owner has no email, skipping reminder",
				"interview_id", interview.ID)
			continue
		}

		data := email.TemplateData{
			"Name":        interview.User.Name,
			"Company":     interview.Company,
			"Role":        interview.Role,
			"ScheduledAt": interview.ScheduledAt.Format("Mon, 2 Jan 2006 15:04 MST"),
		}
		if err := s.emailProvider.SendTemplate(
			[]string{interview.User.Email}, window.Subject, window.Template, data,
		); err != nil {
			// No log row is written, so the next run retries naturally.
			logger.CtxWithError(ctx, "reminder send failed", err,
				"interview_id", interview.ID, "type", string(window.Type))
			continue
		}

		snapshot, _ := json.Marshal(map[string]string{
			"company":      interview.Company,
			"role":         interview.Role,
			"scheduled_at": interview.ScheduledAt.Format(time.RFC3339),
		})
		log := &models.ReminderLog{
			InterviewID:  interview.ID,
			ReminderType: window.Type,
			SentAt:       now,
			Data:         datatypes.JSON(snapshot),
		}
		if err := s.reminderRepo.Create(log); err != nil {
			if err == repositories.ErrReminderAlreadySent {
				// A concurrent run won the insert race; the unique index
				// guarantees only one log row exists either way.
				logger.CtxDebug(ctx, "reminder log already present",
					"interview_id", interview.ID, "type", string(window.Type))
				continue
			}
			logger.CtxWithError(ctx, "failed to record reminder log", err,
				"interview_id", interview.ID)
			continue
		}

		logger.CtxInfo(ctx, "reminder sent",
			"interview_id", interview.ID,
			"type", string(window.Type),
			"to", interview.User.Email)
	}

	return nil
}

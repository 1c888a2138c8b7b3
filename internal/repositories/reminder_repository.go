package repositories

import (
	"errors"

	"gorm.io/gorm"

	"intervue_backend/internal/models"
)

var ErrReminderAlreadySent = errors.New("reminder already sent for this interview and type")

type ReminderRepository interface {
	// Create inserts the sent-marker. The unique index on
	// (interview_id, reminder_type) turns a concurrent double-send into
	// ErrReminderAlreadySent instead of a duplicate row.
	Create(log *models.ReminderLog) error

	Exists(interviewID string, reminderType models.ReminderType) (bool, error)
	FindByInterview(interviewID string) ([]models.ReminderLog, error)
}

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepositoryImpl{db: db}
}

func (r *reminderRepositoryImpl) Create(log *models.ReminderLog) error {
	err := r.db.Create(log).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrReminderAlreadySent
	}
	return err
}

func (r *reminderRepositoryImpl) Exists(interviewID string, reminderType models.ReminderType) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReminderLog{}).
		Where("interview_id = ? AND reminder_type = ?", interviewID, reminderType).
		Count(&count).Error
	return count > 0, err
}

func (r *reminderRepositoryImpl) FindByInterview(interviewID string) ([]models.ReminderLog, error) {
	var logs []models.ReminderLog
	err := r.db.Where("interview_id = ?", interviewID).
		Order("sent_at ASC").
		Find(&logs).Error
	return logs, err
}

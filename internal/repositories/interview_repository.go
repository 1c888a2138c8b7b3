package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"intervue_backend/internal/models"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByIDAndOwner(id, userID string) (*models.Interview, error)
	FindByUser(userID string, status *models.InterviewStatus) ([]models.Interview, error)
	Update(interview *models.Interview) error
	Delete(id, userID string) error

	// CompleteExpired flips stale upcoming interviews to completed. When
	// userID is empty the update runs platform-wide (worker mode), otherwise
	// it is scoped to one owner. The predicate makes the call idempotent.
	CompleteExpired(userID string, now time.Time) (int64, error)

	// FindUpcomingInWindow returns upcoming interviews scheduled inside
	// [from, to], with owners preloaded for email resolution.
	FindUpcomingInWindow(from, to time.Time) ([]models.Interview, error)

	// DeleteOlderThan permanently removes interviews scheduled before the
	// cutoff. Ratings and reminder logs go with them via FK cascade.
	DeleteOlderThan(cutoff time.Time) (int64, error)

	CountByStatus(userID string) (map[models.InterviewStatus]int64, error)
	CountUpcomingBetween(userID string, from, to time.Time) (int64, error)
	UpdateStatus(tx *gorm.DB, id string, status models.InterviewStatus) error
}

type interviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepositoryImpl{db: db}
}

func (r *interviewRepositoryImpl) Create(interview *models.Interview) error {
	return r.db.Create(interview).Error
}

func (r *interviewRepositoryImpl) FindByIDAndOwner(id, userID string) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.First(&interview, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepositoryImpl) FindByUser(userID string, status *models.InterviewStatus) ([]models.Interview, error) {
	var interviews []models.Interview
	query := r.db.Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("scheduled_at ASC").Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepositoryImpl) Update(interview *models.Interview) error {
	result := r.db.Model(interview).
		Where("id = ? AND user_id = ?", interview.ID, interview.UserID).
		Updates(map[string]interface{}{
			"company":      interview.Company,
			"role":         interview.Role,
			"salary":       interview.Salary,
			"scheduled_at": interview.ScheduledAt,
			"notes":        interview.Notes,
			"status":       interview.Status,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *interviewRepositoryImpl) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Interview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *interviewRepositoryImpl) CompleteExpired(userID string, now time.Time) (int64, error) {
	query := r.db.Model(&models.Interview{}).
		Where("status = ? AND scheduled_at < ?", models.InterviewStatusUpcoming, now)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	result := query.Updates(map[string]interface{}{
		"status":     models.InterviewStatusCompleted,
		"updated_at": now,
	})
	return result.RowsAffected, result.Error
}

func (r *interviewRepositoryImpl) FindUpcomingInWindow(from, to time.Time) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.Preload("User").
		Where("status = ? AND scheduled_at >= ? AND scheduled_at <= ?",
			models.InterviewStatusUpcoming, from, to).
		Order("scheduled_at ASC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepositoryImpl) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("scheduled_at < ?", cutoff).Delete(&models.Interview{})
	return result.RowsAffected, result.Error
}

func (r *interviewRepositoryImpl) CountByStatus(userID string) (map[models.InterviewStatus]int64, error) {
	type row struct {
		Status models.InterviewStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Interview{}).
		Select("status, count(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.InterviewStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *interviewRepositoryImpl) CountUpcomingBetween(userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Interview{}).
		Where("user_id = ? AND status = ? AND scheduled_at >= ? AND scheduled_at <= ?",
			userID, models.InterviewStatusUpcoming, from, to).
		Count(&count).Error
	return count, err
}

// UpdateStatus runs inside the caller's transaction when tx is not nil.
func (r *interviewRepositoryImpl) UpdateStatus(tx *gorm.DB, id string, status models.InterviewStatus) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	result := db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

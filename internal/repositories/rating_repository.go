package repositories

import (
	"errors"

	"gorm.io/gorm"

	"intervue_backend/internal/models"
)

var (
	ErrRatingNotFound      = errors.New("rating not found")
	ErrRatingAlreadyExists = errors.New("rating already exists for this interview")
)

type RatingRepository interface {
	// CreateWithStatusFlip inserts the rating and marks the interview
	// completed in one transaction, so a crash cannot leave a rating
	// against a still-upcoming interview.
	CreateWithStatusFlip(rating *models.InterviewRating, flipStatus bool) error

	FindByUser(userID string) ([]models.InterviewRating, error)
	FindByInterview(interviewID string) (*models.InterviewRating, error)
	ExistsForInterview(interviewID string) (bool, error)
}

type ratingRepositoryImpl struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepositoryImpl{db: db}
}

func (r *ratingRepositoryImpl) CreateWithStatusFlip(rating *models.InterviewRating, flipStatus bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrRatingAlreadyExists
			}
			return err
		}
		if !flipStatus {
			return nil
		}
		return tx.Model(&models.Interview{}).
			Where("id = ?", rating.InterviewID).
			Update("status", models.InterviewStatusCompleted).Error
	})
}

func (r *ratingRepositoryImpl) FindByUser(userID string) ([]models.InterviewRating, error) {
	var ratings []models.InterviewRating
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepositoryImpl) FindByInterview(interviewID string) (*models.InterviewRating, error) {
	var rating models.InterviewRating
	err := r.db.First(&rating, "interview_id = ?", interviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepositoryImpl) ExistsForInterview(interviewID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.InterviewRating{}).
		Where("interview_id = ?", interviewID).
		Count(&count).Error
	return count > 0, err
}

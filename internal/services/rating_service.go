package services

import (
	"math"

	"intervue_backend/internal/models"
	"intervue_backend/internal/repositories"
	"intervue_backend/internal/services/dto"
	"intervue_backend/pkg/apperrors"
)

type RatingService interface {
	// Create inserts the rating and flips an upcoming interview to
	// completed in a single transaction.
	Create(userID string, req *dto.CreateRatingRequest) (*models.InterviewRating, error)

	List(userID string) ([]models.InterviewRating, error)
	Summary(userID string) (*dto.RatingSummary, error)
}

type ratingServiceImpl struct {
	ratingRepo    repositories.RatingRepository
	interviewRepo repositories.InterviewRepository
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	interviewRepo repositories.InterviewRepository,
) RatingService {
	return &ratingServiceImpl{
		ratingRepo:    ratingRepo,
		interviewRepo: interviewRepo,
	}
}

func (s *ratingServiceImpl) Create(userID string, req *dto.CreateRatingRequest) (*models.InterviewRating, error) {
	interview, err := s.interviewRepo.FindByIDAndOwner(req.InterviewID, userID)
	if err != nil {
		if err == repositories.ErrInterviewNotFound {
			return nil, apperrors.ErrInterviewNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	rating := &models.InterviewRating{
		UserID:           userID,
		InterviewID:      interview.ID,
		Technical:        req.Technical,
		Managerial:       req.Managerial,
		Projects:         req.Projects,
		SelfIntroduction: req.SelfIntroduction,
		HRRound:          req.HRRound,
		DressUp:          req.DressUp,
		Communication:    req.Communication,
		BodyLanguage:     req.BodyLanguage,
		Punctuality:      req.Punctuality,
		Feedback:         req.Feedback,
	}
	rating.Overall = ComputeOverall(rating)

	// Only an upcoming interview is flipped; terminal outcomes stay put.
	flip := interview.Status == models.InterviewStatusUpcoming
	if err := s.ratingRepo.CreateWithStatusFlip(rating, flip); err != nil {
		if err == repositories.ErrRatingAlreadyExists {
			return nil, apperrors.ErrRatingAlreadyExists()
		}
		return nil, apperrors.InternalError(err)
	}

	return rating, nil
}

func (s *ratingServiceImpl) List(userID string) ([]models.InterviewRating, error) {
	ratings, err := s.ratingRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ratings, nil
}

func (s *ratingServiceImpl) Summary(userID string) (*dto.RatingSummary, error) {
	ratings, err := s.ratingRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return AggregateRatings(ratings), nil
}

// ComputeOverall returns the arithmetic mean of the nine category scores,
// rounded to two decimals.
func ComputeOverall(r *models.InterviewRating) float64 {
	sum := 0
	for _, score := range r.CategoryScores() {
		sum += score
	}
	return round2(float64(sum) / float64(len(models.RatingCategories)))
}

// AggregateRatings computes per-category averages, the average overall
// score, and the count. An empty input yields zeros, never a division
// fault.
func AggregateRatings(ratings []models.InterviewRating) *dto.RatingSummary {
	summary := &dto.RatingSummary{
		Count:      int64(len(ratings)),
		Categories: make(map[string]float64, len(models.RatingCategories)),
	}
	for _, cat := range models.RatingCategories {
		summary.Categories[cat] = 0
	}
	if len(ratings) == 0 {
		return summary
	}

	categorySums := make(map[string]int, len(models.RatingCategories))
	overallSum := 0.0
	for i := range ratings {
		for cat, score := range ratings[i].CategoryScores() {
			categorySums[cat] += score
		}
		overallSum += ratings[i].Overall
	}

	n := float64(len(ratings))
	for cat, sum := range categorySums {
		summary.Categories[cat] = round2(float64(sum) / n)
	}
	summary.Overall = round2(overallSum / n)

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

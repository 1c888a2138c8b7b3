package services

import (
	"time"

	"intervue_backend/internal/models"
	"intervue_backend/internal/repositories"
	"intervue_backend/internal/services/dto"
	"intervue_backend/pkg/apperrors"
)

type AnalyticsService interface {
	Dashboard(userID string) (*dto.DashboardResponse, error)
}

type analyticsServiceImpl struct {
	interviewRepo repositories.InterviewRepository
	ratingRepo    repositories.RatingRepository
}

func NewAnalyticsService(
	interviewRepo repositories.InterviewRepository,
	ratingRepo repositories.RatingRepository,
) AnalyticsService {
	return &analyticsServiceImpl{
		interviewRepo: interviewRepo,
		ratingRepo:    ratingRepo,
	}
}

func (s *analyticsServiceImpl) Dashboard(userID string) (*dto.DashboardResponse, error) {
	counts, err := s.interviewRepo.CountByStatus(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byStatus := make(map[string]int64, 4)
	var total int64
	for _, status := range []models.InterviewStatus{
		models.InterviewStatusUpcoming,
		models.InterviewStatusCompleted,
		models.InterviewStatusSucceeded,
		models.InterviewStatusRejected,
	} {
		byStatus[string(status)] = counts[status]
		total += counts[status]
	}

	now := time.Now()
	upcomingSoon, err := s.interviewRepo.CountUpcomingBetween(userID, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ratings, err := s.ratingRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardResponse{
		Total:             total,
		ByStatus:          byStatus,
		UpcomingNext7Days: upcomingSoon,
		Ratings:           *AggregateRatings(ratings),
	}, nil
}

package services

import (
	"time"

	"intervue_backend/internal/logger"
	"intervue_backend/internal/models"
	"intervue_backend/internal/repositories"
	"intervue_backend/internal/services/dto"
	"intervue_backend/pkg/apperrors"
)

// RefreshNotifier tells connected clients that their interview list is
// stale. Delivery is best-effort and at-least-once; consumers refetch the
// authoritative list, so duplicates are harmless.
type RefreshNotifier interface {
	NotifyInterviewDeleted(userID, interviewID string)
}

type InterviewService interface {
	Create(userID string, req *dto.CreateInterviewRequest) (*models.Interview, error)
	Get(userID, interviewID string) (*models.Interview, error)

	// List returns the user's interviews. It sweeps the owner's expired
	// upcoming interviews first so callers always see fresh statuses.
	List(userID string, status *models.InterviewStatus) ([]models.Interview, error)

	Update(userID, interviewID string, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Complete(userID, interviewID string, outcome models.InterviewStatus) (*models.Interview, error)
	Delete(userID, interviewID string) error
}

type interviewServiceImpl struct {
	interviewRepo repositories.InterviewRepository
	ratingRepo    repositories.RatingRepository
	notifier      RefreshNotifier
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	ratingRepo repositories.RatingRepository,
	notifier RefreshNotifier,
) InterviewService {
	return &interviewServiceImpl{
		interviewRepo: interviewRepo,
		ratingRepo:    ratingRepo,
		notifier:      notifier,
	}
}

func (s *interviewServiceImpl) Create(userID string, req *dto.CreateInterviewRequest) (*models.Interview, error) {
	interview := &models.Interview{
		UserID:      userID,
		Company:     req.Company,
		Role:        req.Role,
		Salary:      req.Salary,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
		Status:      models.InterviewStatusUpcoming,
	}

	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

func (s *interviewServiceImpl) Get(userID, interviewID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByIDAndOwner(interviewID, userID)
	if err != nil {
		if err == repositories.ErrInterviewNotFound {
			return nil, apperrors.ErrInterviewNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

func (s *interviewServiceImpl) List(userID string, status *models.InterviewStatus) ([]models.Interview, error) {
	// Sweep errors are logged and swallowed: the list itself is still
	// served and the next sweep catches what this one missed.
	if swept, err := s.interviewRepo.CompleteExpired(userID, time.Now()); err != nil {
		logger.WithError(err).Warn("expiry sweep failed during list", "user_id", userID)
	} else if swept > 0 {
		logger.Debug("expiry sweep completed interviews", "user_id", userID, "count", swept)
	}

	interviews, err := s.interviewRepo.FindByUser(userID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviews, nil
}

func (s *interviewServiceImpl) Update(userID, interviewID string, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	interview, err := s.Get(userID, interviewID)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		interview.Company = *req.Company
	}
	if req.Role != nil {
		interview.Role = *req.Role
	}
	if req.Salary != nil {
		interview.Salary = *req.Salary
	}
	if req.ScheduledAt != nil {
		interview.ScheduledAt = *req.ScheduledAt
	}
	if req.Notes != nil {
		interview.Notes = *req.Notes
	}
	if req.Status != nil {
		next := models.InterviewStatus(*req.Status)
		if !models.CanTransition(interview.Status, next) {
			return nil, apperrors.ErrInvalidStatusTransition(string(interview.Status), string(next))
		}
		interview.Status = next
	}

	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

func (s *interviewServiceImpl) Complete(userID, interviewID string, outcome models.InterviewStatus) (*models.Interview, error) {
	if outcome != models.InterviewStatusSucceeded && outcome != models.InterviewStatusRejected {
		return nil, apperrors.NewBadRequestError("outcome must be succeeded or rejected")
	}

	interview, err := s.Get(userID, interviewID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(interview.Status, outcome) {
		return nil, apperrors.ErrInvalidStatusTransition(string(interview.Status), string(outcome))
	}

	if err := s.interviewRepo.UpdateStatus(nil, interview.ID, outcome); err != nil {
		return nil, apperrors.InternalError(err)
	}

	interview.Status = outcome
	return interview, nil
}

func (s *interviewServiceImpl) Delete(userID, interviewID string) error {
	if err := s.interviewRepo.Delete(interviewID, userID); err != nil {
		if err == repositories.ErrInterviewNotFound {
			return apperrors.ErrInterviewNotFound()
		}
		return apperrors.InternalError(err)
	}

	if s.notifier != nil {
		s.notifier.NotifyInterviewDeleted(userID, interviewID)
	}
	return nil
}

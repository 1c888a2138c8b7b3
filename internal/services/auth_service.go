package services

import (
	"intervue_backend/internal/auth"
	"intervue_backend/internal/models"
	"intervue_backend/internal/repositories"
	"intervue_backend/internal/services/dto"
	"intervue_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetMe(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) error
}

type authServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authServiceImpl{userRepo: userRepo}
}

func (s *authServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailTaken()
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.CreateWithProfile(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

func (s *authServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials()
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials()
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        *buildUserResponse(user),
	}, nil
}

func (s *authServiceImpl) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound()
	}
	return buildUserResponse(user), nil
}

func (s *authServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) error {
	if err := s.userRepo.UpdateProfilePhone(userID, req.Phone); err != nil {
		if err == repositories.ErrProfileNotFound {
			return apperrors.ErrUserNotFound()
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		resp.Phone = user.Profile.Phone
	}
	return resp
}

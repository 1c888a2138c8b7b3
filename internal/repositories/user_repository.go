package repositories

import (
	"errors"

	"gorm.io/gorm"

	"intervue_backend/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

type UserRepository interface {
	Create(user *models.User) error
	CreateWithProfile(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindProfile(userID string) (*models.UserProfile, error)
	UpdateProfilePhone(userID string, phone *string) error
}

type userRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithProfile creates the user and an empty profile in one transaction.
func (r *userRepositoryImpl) CreateWithProfile(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.UserProfile{UserID: user.ID}
		return tx.Create(profile).Error
	})
}

func (r *userRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindProfile(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepositoryImpl) UpdateProfilePhone(userID string, phone *string) error {
	result := r.db.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("phone", phone)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

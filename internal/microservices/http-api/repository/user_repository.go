package repository

import (
	"context"
	"fmt"

	"skillswap/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// UserRepository is the user directory: lookups, flags and listing.
type UserRepository interface {
	CreateWithSummary(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetBanned(ctx context.Context, id string, banned bool) error
	ListPublic(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	GetRatingSummary(ctx context.Context, userID string) (*models.RatingSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithSummary stores the user with an empty rating summary
func (r *userRepository) CreateWithSummary(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("RatingSummary", "Skills").Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", translate(err))
		}
		summary := &models.RatingSummary{UserID: user.ID}
		if err := tx.Create(summary).Error; err != nil {
			return fmt.Errorf("create rating summary: %w", err)
		}
		user.RatingSummary = summary
		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if !validUserID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	// return nil on miss so a zero-value user is never mistaken for a hit
	if err := r.db.WithContext(ctx).Preload("RatingSummary").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	if !validUserID(id) {
		return gorm.ErrRecordNotFound
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("is_banned", banned)
	if result.Error != nil {
		return fmt.Errorf("set banned: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPublic lists active, unbanned, public users with skills and rating
func (r *userRepository) ListPublic(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	base := r.db.WithContext(ctx).Model(&models.User{}).
		Where("is_active = ? AND is_banned = ? AND is_public = ?", true, false, true).
		Session(&gorm.Session{})

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := base.
		Preload("RatingSummary").
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Skills.Skill").
		Order("created_at DESC, id ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) GetRatingSummary(ctx context.Context, userID string) (*models.RatingSummary, error) {
	if !validUserID(userID) {
		return nil, gorm.ErrRecordNotFound
	}
	var summary models.RatingSummary
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

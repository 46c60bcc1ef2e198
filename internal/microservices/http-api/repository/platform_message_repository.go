package repository

import (
	"context"

	"skillswap/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type PlatformMessageRepository interface {
	Create(ctx context.Context, msg *models.PlatformMessage) error
	List(ctx context.Context) ([]models.PlatformMessage, error)
}

type platformMessageRepository struct {
	db *gorm.DB
}

func NewPlatformMessageRepository(db *gorm.DB) PlatformMessageRepository {
	return &platformMessageRepository{db: db}
}

func (r *platformMessageRepository) Create(ctx context.Context, msg *models.PlatformMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *platformMessageRepository) List(ctx context.Context) ([]models.PlatformMessage, error) {
	var msgs []models.PlatformMessage
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&msgs).Error
	return msgs, err
}

package repository

import (
	"context"
	"fmt"

	"skillswap/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest, offeredSkillIDs, wantedSkillIDs []int64) error
	FindByID(ctx context.Context, id int64) (*models.SwapRequest, error)
	CompareAndSetStatus(ctx context.Context, id int64, receiverID string, from, to models.SwapStatus) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error)
	ListAll(ctx context.Context, status *models.SwapStatus) ([]models.SwapRequest, error)
}

type swapRepository struct {
	db *gorm.DB
}

func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

// Create inserts the request and its skill entries in one transaction.
// Entries keep the order of the id slices, duplicates included.
func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest, offeredSkillIDs, wantedSkillIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(swap).Error; err != nil {
			return fmt.Errorf("create swap request: %w", err)
		}

		if len(offeredSkillIDs) > 0 {
			offered := make([]models.SwapOfferedSkill, 0, len(offeredSkillIDs))
			for _, id := range offeredSkillIDs {
				offered = append(offered, models.SwapOfferedSkill{SwapRequestID: swap.ID, SkillID: id})
			}
			if err := tx.Omit(clause.Associations).Create(&offered).Error; err != nil {
				return fmt.Errorf("attach offered skills: %w", err)
			}
		}

		if len(wantedSkillIDs) > 0 {
			wanted := make([]models.SwapWantedSkill, 0, len(wantedSkillIDs))
			for _, id := range wantedSkillIDs {
				wanted = append(wanted, models.SwapWantedSkill{SwapRequestID: swap.ID, SkillID: id})
			}
			if err := tx.Omit(clause.Associations).Create(&wanted).Error; err != nil {
				return fmt.Errorf("attach wanted skills: %w", err)
			}
		}
		return nil
	})
}

func (r *swapRepository) FindByID(ctx context.Context, id int64) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := withSwapDetails(r.db.WithContext(ctx)).First(&swap, id).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// CompareAndSetStatus moves the request from `from` to `to` only if it is
// still in `from` and owned by receiverID. The boolean reports whether this
// call won the update.
func (r *swapRepository) CompareAndSetStatus(ctx context.Context, id int64, receiverID string, from, to models.SwapStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND receiver_id = ? AND status = ?", id, receiverID, from).
		Update("status", to)
	if result.Error != nil {
		return false, fmt.Errorf("update swap status: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ListForUser returns requests sent or received by the user, newest first
func (r *swapRepository) ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := withSwapDetails(r.db.WithContext(ctx)).
		Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&swaps).Error
	return swaps, err
}

// ListAll is the moderation view; a nil status lists everything
func (r *swapRepository) ListAll(ctx context.Context, status *models.SwapStatus) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	q := withSwapDetails(r.db.WithContext(ctx))
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Order("created_at DESC, id DESC").Find(&swaps).Error
	return swaps, err
}

func withSwapDetails(db *gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }
	return db.
		Preload("Requester").
		Preload("Receiver").
		Preload("OfferedSkills", byID).
		Preload("OfferedSkills.Skill").
		Preload("WantedSkills", byID).
		Preload("WantedSkills.Skill")
}

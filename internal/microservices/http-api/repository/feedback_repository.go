package repository

import (
	"context"
	"errors"
	"fmt"

	"skillswap/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryUpdate computes the next aggregate from the locked current one.
type SummaryUpdate func(current models.RatingSummary) models.RatingSummary

type FeedbackRepository interface {
	ExistsForSwap(ctx context.Context, swapID int64) (bool, error)
	CreateWithSummary(ctx context.Context, feedback *models.Feedback, update SummaryUpdate) (*models.RatingSummary, error)
	ListForReviewee(ctx context.Context, userID string) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) ExistsForSwap(ctx context.Context, swapID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Feedback{}).Where("swap_request_id = ?", swapID).Count(&count).Error
	return count > 0, err
}

// CreateWithSummary inserts the feedback row and rewrites the reviewee's
// rating summary in one transaction. The unique index on swap_request_id
// makes a concurrent second insert fail with ErrDuplicate; the summary row is
// locked so concurrent reviews of the same user apply one after another.
func (r *feedbackRepository) CreateWithSummary(ctx context.Context, feedback *models.Feedback, update SummaryUpdate) (*models.RatingSummary, error) {
	var next models.RatingSummary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(feedback).Error; err != nil {
			return fmt.Errorf("create feedback: %w", translate(err))
		}

		var current models.RatingSummary
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", feedback.RevieweeID).
			First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// users created before summaries existed
			current = models.RatingSummary{UserID: feedback.RevieweeID}
			if err := tx.Create(&current).Error; err != nil {
				return fmt.Errorf("create rating summary: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("lock rating summary: %w", err)
		}

		next = update(current)
		next.UserID = current.UserID
		if err := tx.Model(&models.RatingSummary{}).
			Where("user_id = ?", next.UserID).
			Updates(map[string]any{
				"average_rating": next.AverageRating,
				"total_reviews":  next.TotalReviews,
				"rating_sum":     next.RatingSum,
			}).Error; err != nil {
			return fmt.Errorf("update rating summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// ListForReviewee returns feedback received by the user, newest first
func (r *feedbackRepository) ListForReviewee(ctx context.Context, userID string) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("reviewee_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

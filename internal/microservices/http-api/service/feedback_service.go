package service

import (
	"context"
	"log/slog"
	"math"

	"skillswap/internal/apperror"
	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"
)

const (
	minRating = 1
	maxRating = 5
)

// FeedbackService records the single review a requester may leave on an
// accepted swap and keeps the reviewee's rating aggregate current.
type FeedbackService interface {
	Submit(ctx context.Context, reviewerID string, swapID int64, rating int, comment string) (*models.Feedback, *models.RatingSummary, error)
	ListForUser(ctx context.Context, userID string) ([]dto.FeedbackResponse, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	swapRepo     repository.SwapRepository
	logger       *slog.Logger
}

func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	swapRepo repository.SwapRepository,
	logger *slog.Logger,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		swapRepo:     swapRepo,
		logger:       logger,
	}
}

var errFeedbackExists = apperror.Conflict("feedback already submitted for this swap")

func (s *feedbackService) Submit(ctx context.Context, reviewerID string, swapID int64, rating int, comment string) (*models.Feedback, *models.RatingSummary, error) {
	if rating < minRating || rating > maxRating {
		return nil, nil, apperror.Validation("rating must be between 1 and 5")
	}

	swap, err := s.swapRepo.FindByID(ctx, swapID)
	if isNotFound(err) {
		return nil, nil, errSwapNotFound
	}
	if err != nil {
		return nil, nil, internal("could not load swap request", err)
	}
	// only the requester reviews, and a stranger cannot tell the swap exists
	if swap.RequesterID != reviewerID {
		return nil, nil, errSwapNotFound
	}
	if swap.Status != models.SwapAccepted {
		return nil, nil, apperror.InvalidState("feedback is only allowed on accepted swaps")
	}

	exists, err := s.feedbackRepo.ExistsForSwap(ctx, swapID)
	if err != nil {
		return nil, nil, internal("could not check feedback", err)
	}
	if exists {
		return nil, nil, errFeedbackExists
	}

	feedback := &models.Feedback{
		SwapRequestID: swap.ID,
		ReviewerID:    swap.RequesterID,
		RevieweeID:    swap.ReceiverID,
		Rating:        rating,
		Comment:       comment,
	}
	summary, err := s.feedbackRepo.CreateWithSummary(ctx, feedback, func(cur models.RatingSummary) models.RatingSummary {
		return nextSummary(cur, rating)
	})
	if isDuplicate(err) {
		// lost the race against a concurrent submit
		return nil, nil, errFeedbackExists
	}
	if err != nil {
		s.logger.Error("feedback_submit_failed", "swap_id", swapID, "error", err)
		return nil, nil, internal("could not submit feedback", err)
	}

	s.logger.Info("feedback_submitted",
		"swap_id", swapID,
		"reviewee_id", feedback.RevieweeID,
		"rating", rating,
		"average_rating", summary.AverageRating,
		"total_reviews", summary.TotalReviews,
	)
	return feedback, summary, nil
}

// nextSummary folds one rating into the aggregate:
// new_avg = (old_avg*old_count + rating) / (old_count+1), stored to 2 dp.
// old_avg*old_count is taken from the exact running sum.
func nextSummary(cur models.RatingSummary, rating int) models.RatingSummary {
	sum := cur.RatingSum
	if sum == 0 && cur.TotalReviews > 0 {
		// aggregate written before the sum column existed
		sum = int64(math.Round(cur.AverageRating * float64(cur.TotalReviews)))
	}
	sum += int64(rating)
	count := cur.TotalReviews + 1

	return models.RatingSummary{
		UserID:        cur.UserID,
		AverageRating: roundTo2(float64(sum) / float64(count)),
		TotalReviews:  count,
		RatingSum:     sum,
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ListForUser returns feedback received by userID, newest first
func (s *feedbackService) ListForUser(ctx context.Context, userID string) ([]dto.FeedbackResponse, error) {
	feedbacks, err := s.feedbackRepo.ListForReviewee(ctx, userID)
	if err != nil {
		return nil, internal("could not list feedback", err)
	}

	out := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, dto.FromModelToFeedbackResponse(&feedbacks[i]))
	}
	return out, nil
}

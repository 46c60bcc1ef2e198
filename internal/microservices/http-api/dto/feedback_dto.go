package dto

import (
	"time"

	"skillswap/internal/microservices/http-api/models"
)

type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,notblank,max=2000"`
}

// FeedbackResponse exposes the reviewer by display name only
type FeedbackResponse struct {
	ID           int64     `json:"id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromModelToFeedbackResponse(f *models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           f.ID,
		ReviewerName: f.Reviewer.FullName,
		Rating:       f.Rating,
		Comment:      f.Comment,
		CreatedAt:    f.CreatedAt,
	}
}

// SubmitFeedbackResponse returns the new feedback and the reviewee's aggregate
type SubmitFeedbackResponse struct {
	FeedbackID    int64   `json:"feedback_id"`
	RevieweeID    string  `json:"reviewee_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

package models

// RatingSummary is the running mean of ratings received by a user.
// RatingSum is the exact integer sum behind AverageRating so the stored
// two-decimal mean never drifts as reviews accumulate.
type RatingSummary struct {
	UserID        string  `json:"user_id" gorm:"primaryKey;type:uuid"`
	AverageRating float64 `json:"average_rating" gorm:"not null;default:0"`
	TotalReviews  int     `json:"total_reviews" gorm:"not null;default:0;check:total_reviews >= 0"`
	RatingSum     int64   `json:"-" gorm:"not null;default:0"`
}

func (RatingSummary) TableName() string {
	return "user_rating_summaries"
}

package models

import "time"

type Feedback struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SwapRequestID int64     `json:"swap_request_id" gorm:"not null;uniqueIndex"` // one feedback per swap
	ReviewerID    string    `json:"reviewer_id" gorm:"type:uuid;not null;index"`
	RevieweeID    string    `json:"reviewee_id" gorm:"type:uuid;not null;index"`
	Rating        int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment       string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Associations
	SwapRequest SwapRequest `json:"-" gorm:"foreignKey:SwapRequestID;constraint:OnDelete:CASCADE;"`
	Reviewer    User        `json:"-" gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE;"`
	Reviewee    User        `json:"-" gorm:"foreignKey:RevieweeID;constraint:OnDelete:CASCADE;"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

package dto

import (
	"time"

	"skillswap/internal/microservices/http-api/models"
)

// SetBannedRequest: pointer so an explicit false is distinguishable from a missing field
type SetBannedRequest struct {
	IsBanned *bool `json:"is_banned" binding:"required"`
}

type SetBannedResponse struct {
	UserID   string `json:"user_id"`
	IsBanned bool   `json:"is_banned"`
}

type PostMessageRequest struct {
	Title string `json:"title" binding:"required,notblank,max=255"`
	Body  string `json:"body" binding:"required,notblank"`
}

type PlatformMessageResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToMessageResponse(m *models.PlatformMessage) PlatformMessageResponse {
	return PlatformMessageResponse{ID: m.ID, Title: m.Title, Body: m.Body, CreatedAt: m.CreatedAt}
}

func FromModelToMessageResponses(msgs []models.PlatformMessage) []PlatformMessageResponse {
	out := make([]PlatformMessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, FromModelToMessageResponse(&msgs[i]))
	}
	return out
}

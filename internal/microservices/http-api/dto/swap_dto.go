package dto

import (
	"time"

	"skillswap/internal/microservices/http-api/models"
)

// CreateSwapRequest: both lists must be present, either may be empty
type CreateSwapRequest struct {
	ReceiverID    string   `json:"receiver_id" binding:"required,uuid"`
	Message       string   `json:"message" binding:"max=2000"`
	OfferedSkills []string `json:"offered_skills" binding:"required,max=50,dive,notblank,max=100"`
	WantedSkills  []string `json:"wanted_skills" binding:"required,max=50,dive,notblank,max=100"`
}

type UpdateSwapStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected cancelled"`
}

// SwapResponse is a participant's view of a request
type SwapResponse struct {
	ID            int64     `json:"id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	ReceiverID    string    `json:"receiver_id"`
	ReceiverName  string    `json:"receiver_name"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	OfferedSkills []string  `json:"offered_skills"`
	WantedSkills  []string  `json:"wanted_skills"`
}

func FromModelToSwapResponse(s *models.SwapRequest) SwapResponse {
	return SwapResponse{
		ID:            s.ID,
		RequesterID:   s.RequesterID,
		RequesterName: s.Requester.FullName,
		ReceiverID:    s.ReceiverID,
		ReceiverName:  s.Receiver.FullName,
		Message:       s.Message,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
		OfferedSkills: s.OfferedSkillNames(),
		WantedSkills:  s.WantedSkillNames(),
	}
}

func FromModelToSwapResponses(swaps []models.SwapRequest) []SwapResponse {
	out := make([]SwapResponse, 0, len(swaps))
	for i := range swaps {
		out = append(out, FromModelToSwapResponse(&swaps[i]))
	}
	return out
}

// SwapMonitorResponse is the moderation view, identifying parties by email
type SwapMonitorResponse struct {
	ID             int64     `json:"id"`
	RequesterEmail string    `json:"requester_email"`
	ReceiverEmail  string    `json:"receiver_email"`
	OfferedSkills  []string  `json:"offered_skills"`
	WantedSkills   []string  `json:"wanted_skills"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromModelToSwapMonitorResponses(swaps []models.SwapRequest) []SwapMonitorResponse {
	out := make([]SwapMonitorResponse, 0, len(swaps))
	for i := range swaps {
		s := &swaps[i]
		out = append(out, SwapMonitorResponse{
			ID:             s.ID,
			RequesterEmail: s.Requester.Email,
			ReceiverEmail:  s.Receiver.Email,
			OfferedSkills:  s.OfferedSkillNames(),
			WantedSkills:   s.WantedSkillNames(),
			Message:        s.Message,
			Status:         string(s.Status),
			CreatedAt:      s.CreatedAt,
		})
	}
	return out
}

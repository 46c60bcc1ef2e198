package dto

import "skillswap/internal/microservices/http-api/models"

// UserListItem is one row of the public directory
type UserListItem struct {
	ID            string   `json:"id"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email"`
	Location      *string  `json:"location,omitempty"`
	Availability  *string  `json:"availability,omitempty"`
	IsPublic      bool     `json:"is_public"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	OfferedSkills []string `json:"offered_skills"`
	WantedSkills  []string `json:"wanted_skills"`
}

func FromModelToUserListItem(u *models.User) UserListItem {
	offered, wanted := SplitUserSkills(u.Skills)
	item := UserListItem{
		ID:            u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		Location:      u.Location,
		Availability:  u.Availability,
		IsPublic:      u.IsPublic,
		OfferedSkills: offered,
		WantedSkills:  wanted,
	}
	if u.RatingSummary != nil {
		item.AverageRating = u.RatingSummary.AverageRating
		item.TotalReviews = u.RatingSummary.TotalReviews
	}
	return item
}

type PaginatedUserResponse struct {
	Data       []UserListItem `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// NewPaginatedUserResponse creates a paginated user response
func NewPaginatedUserResponse(data []UserListItem, total int64, page, pageSize int) *PaginatedUserResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &PaginatedUserResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ProfileResponse is a single user's profile with received feedback
type ProfileResponse struct {
	ID            string             `json:"id"`
	FullName      string             `json:"full_name"`
	Email         string             `json:"email"`
	Location      *string            `json:"location,omitempty"`
	Availability  *string            `json:"availability,omitempty"`
	IsPublic      bool               `json:"is_public"`
	AverageRating float64            `json:"average_rating"`
	TotalReviews  int                `json:"total_reviews"`
	OfferedSkills []string           `json:"offered_skills"`
	WantedSkills  []string           `json:"wanted_skills"`
	IsSelf        bool               `json:"is_self"`
	Feedbacks     []FeedbackResponse `json:"feedbacks"`
}

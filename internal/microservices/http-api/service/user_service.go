package service

import (
	"context"

	"skillswap/internal/apperror"
	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UserService is the user directory: identity lookup for the auth layer and
// the listing and profile views.
type UserService interface {
	Lookup(ctx context.Context, userID string) (*models.User, error)
	ListPublic(ctx context.Context, page, pageSize int) (*dto.PaginatedUserResponse, error)
	Profile(ctx context.Context, viewerID, targetID string) (*dto.ProfileResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	ledger   SkillLedger
	feedback FeedbackService
}

func NewUserService(userRepo repository.UserRepository, ledger SkillLedger, feedback FeedbackService) UserService {
	return &userService{userRepo: userRepo, ledger: ledger, feedback: feedback}
}

func (s *userService) Lookup(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if isNotFound(err) {
		return nil, apperror.NotFound("user not found")
	}
	if err != nil {
		return nil, internal("could not load user", err)
	}
	return user, nil
}

func (s *userService) ListPublic(ctx context.Context, page, pageSize int) (*dto.PaginatedUserResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	users, total, err := s.userRepo.ListPublic(ctx, page, pageSize)
	if err != nil {
		return nil, internal("could not list users", err)
	}

	items := make([]dto.UserListItem, 0, len(users))
	for i := range users {
		items = append(items, dto.FromModelToUserListItem(&users[i]))
	}
	return dto.NewPaginatedUserResponse(items, total, page, pageSize), nil
}

// Profile renders targetID as seen by viewerID. Banned users are hidden
// from everyone but themselves.
func (s *userService) Profile(ctx context.Context, viewerID, targetID string) (*dto.ProfileResponse, error) {
	user, err := s.Lookup(ctx, targetID)
	if err != nil {
		return nil, err
	}
	isSelf := viewerID == user.ID
	if user.IsBanned && !isSelf {
		return nil, apperror.Forbidden("this user is banned")
	}

	entries, err := s.ledger.List(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	offered, wanted := dto.SplitUserSkills(entries)

	feedbacks, err := s.feedback.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileResponse{
		ID:            user.ID,
		FullName:      user.FullName,
		Email:         user.Email,
		Location:      user.Location,
		Availability:  user.Availability,
		IsPublic:      user.IsPublic,
		OfferedSkills: offered,
		WantedSkills:  wanted,
		IsSelf:        isSelf,
		Feedbacks:     feedbacks,
	}
	if user.RatingSummary != nil {
		profile.AverageRating = user.RatingSummary.AverageRating
		profile.TotalReviews = user.RatingSummary.TotalReviews
	}
	return profile, nil
}

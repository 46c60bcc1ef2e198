package service

import (
	"context"
	"log/slog"
	"strings"

	"skillswap/internal/apperror"
	"skillswap/internal/cache"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"
)

// ModerationService holds the admin-only mutations on users and
// platform messages.
type ModerationService interface {
	SetBanned(ctx context.Context, userID string, banned bool) error
	PostMessage(ctx context.Context, title, body string) (*models.PlatformMessage, error)
	ListMessages(ctx context.Context) ([]models.PlatformMessage, error)
}

type moderationService struct {
	userRepo    repository.UserRepository
	messageRepo repository.PlatformMessageRepository
	cache       cache.MessageCache
	logger      *slog.Logger
}

func NewModerationService(
	userRepo repository.UserRepository,
	messageRepo repository.PlatformMessageRepository,
	messageCache cache.MessageCache,
	logger *slog.Logger,
) ModerationService {
	if messageCache == nil {
		messageCache = cache.NewRedisMessageCache(nil, 0)
	}
	return &moderationService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		cache:       messageCache,
		logger:      logger,
	}
}

// SetBanned sets the flag unconditionally; banning twice is fine.
func (s *moderationService) SetBanned(ctx context.Context, userID string, banned bool) error {
	err := s.userRepo.SetBanned(ctx, userID, banned)
	if isNotFound(err) {
		return apperror.NotFound("user not found")
	}
	if err != nil {
		return internal("could not update user", err)
	}

	s.logger.Info("user_ban_updated", "user_id", userID, "is_banned", banned)
	return nil
}

func (s *moderationService) PostMessage(ctx context.Context, title, body string) (*models.PlatformMessage, error) {
	title, body = strings.TrimSpace(title), strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, apperror.Validation("title and body are required")
	}

	msg := &models.PlatformMessage{Title: title, Body: body}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, internal("could not post message", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("message_cache_invalidate_failed", "error", err)
	}

	s.logger.Info("platform_message_posted", "message_id", msg.ID)
	return msg, nil
}

// ListMessages returns all messages newest first, from cache when warm.
func (s *moderationService) ListMessages(ctx context.Context) ([]models.PlatformMessage, error) {
	msgs, hit, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("message_cache_read_failed", "error", err)
	} else if hit {
		return msgs, nil
	}

	msgs, err = s.messageRepo.List(ctx)
	if err != nil {
		return nil, internal("could not list messages", err)
	}

	if err := s.cache.Set(ctx, msgs); err != nil {
		s.logger.Warn("message_cache_write_failed", "error", err)
	}
	return msgs, nil
}

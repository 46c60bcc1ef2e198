package service

import (
	"context"
	"io"
	"log/slog"

	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockSkillRepository mocks the SkillRepository interface
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) FindByName(ctx context.Context, name string) (*models.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) FirstOrCreate(ctx context.Context, name string) (*models.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

// MockUserSkillRepository mocks the UserSkillRepository interface
type MockUserSkillRepository struct {
	mock.Mock
}

func (m *MockUserSkillRepository) Add(ctx context.Context, userID string, skillID int64, role models.SkillRole) error {
	return m.Called(ctx, userID, skillID, role).Error(0)
}

func (m *MockUserSkillRepository) Remove(ctx context.Context, userID string, skillID int64, role models.SkillRole) error {
	return m.Called(ctx, userID, skillID, role).Error(0)
}

func (m *MockUserSkillRepository) ListByUser(ctx context.Context, userID string) ([]models.UserSkill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSkill), args.Error(1)
}

// MockSwapRepository mocks the SwapRepository interface
type MockSwapRepository struct {
	mock.Mock
}

func (m *MockSwapRepository) Create(ctx context.Context, swap *models.SwapRequest, offered, wanted []int64) error {
	return m.Called(ctx, swap, offered, wanted).Error(0)
}

func (m *MockSwapRepository) FindByID(ctx context.Context, id int64) (*models.SwapRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapRepository) CompareAndSetStatus(ctx context.Context, id int64, receiverID string, from, to models.SwapStatus) (bool, error) {
	args := m.Called(ctx, id, receiverID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockSwapRepository) ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SwapRequest), args.Error(1)
}

func (m *MockSwapRepository) ListAll(ctx context.Context, status *models.SwapStatus) ([]models.SwapRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SwapRequest), args.Error(1)
}

// MockFeedbackRepository mocks the FeedbackRepository interface
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) ExistsForSwap(ctx context.Context, swapID int64) (bool, error) {
	args := m.Called(ctx, swapID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) CreateWithSummary(ctx context.Context, fb *models.Feedback, update repository.SummaryUpdate) (*models.RatingSummary, error) {
	args := m.Called(ctx, fb, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingSummary), args.Error(1)
}

func (m *MockFeedbackRepository) ListForReviewee(ctx context.Context, userID string) ([]models.Feedback, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithSummary(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	return m.Called(ctx, id, banned).Error(0)
}

func (m *MockUserRepository) ListPublic(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) GetRatingSummary(ctx context.Context, userID string) (*models.RatingSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingSummary), args.Error(1)
}

// MockPlatformMessageRepository mocks the PlatformMessageRepository interface
type MockPlatformMessageRepository struct {
	mock.Mock
}

func (m *MockPlatformMessageRepository) Create(ctx context.Context, msg *models.PlatformMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockPlatformMessageRepository) List(ctx context.Context) ([]models.PlatformMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlatformMessage), args.Error(1)
}

// MockMessageCache mocks cache.MessageCache
type MockMessageCache struct {
	mock.Mock
}

func (m *MockMessageCache) Get(ctx context.Context) ([]models.PlatformMessage, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.PlatformMessage), args.Bool(1), args.Error(2)
}

func (m *MockMessageCache) Set(ctx context.Context, msgs []models.PlatformMessage) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *MockMessageCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

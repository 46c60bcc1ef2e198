package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/middleware"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
	return gin.New()
}

// asUser stands in for AuthMiddleware
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextUserID, userID)
		}
		c.Next()
	}
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (string, *models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) TokenTTL() time.Duration {
	return 15 * time.Minute
}

// MockSwapService mocks the SwapService interface
type MockSwapService struct {
	mock.Mock
}

func (m *MockSwapService) Create(ctx context.Context, requesterID string, in service.CreateSwapInput) (*models.SwapRequest, error) {
	args := m.Called(ctx, requesterID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapService) Transition(ctx context.Context, swapID int64, actorID string, to models.SwapStatus) (*models.SwapRequest, error) {
	args := m.Called(ctx, swapID, actorID, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapService) ListMine(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SwapRequest), args.Error(1)
}

func (m *MockSwapService) Monitor(ctx context.Context, statusFilter string) ([]models.SwapRequest, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SwapRequest), args.Error(1)
}

// MockFeedbackService mocks the FeedbackService interface
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, reviewerID string, swapID int64, rating int, comment string) (*models.Feedback, *models.RatingSummary, error) {
	args := m.Called(ctx, reviewerID, swapID, rating, comment)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Feedback), args.Get(1).(*models.RatingSummary), args.Error(2)
}

func (m *MockFeedbackService) ListForUser(ctx context.Context, userID string) ([]dto.FeedbackResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.FeedbackResponse), args.Error(1)
}

// MockModerationService mocks the ModerationService interface
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) SetBanned(ctx context.Context, userID string, banned bool) error {
	return m.Called(ctx, userID, banned).Error(0)
}

func (m *MockModerationService) PostMessage(ctx context.Context, title, body string) (*models.PlatformMessage, error) {
	args := m.Called(ctx, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformMessage), args.Error(1)
}

func (m *MockModerationService) ListMessages(ctx context.Context) ([]models.PlatformMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlatformMessage), args.Error(1)
}

// MockSkillCatalog mocks the SkillCatalog interface
type MockSkillCatalog struct {
	mock.Mock
}

func (m *MockSkillCatalog) ResolveOrCreate(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSkillCatalog) List(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

// MockSkillLedger mocks the SkillLedger interface
type MockSkillLedger struct {
	mock.Mock
}

func (m *MockSkillLedger) AddSkills(ctx context.Context, userID string, names []string, role models.SkillRole) error {
	return m.Called(ctx, userID, names, role).Error(0)
}

func (m *MockSkillLedger) RemoveSkills(ctx context.Context, userID string, names []string, role models.SkillRole) error {
	return m.Called(ctx, userID, names, role).Error(0)
}

func (m *MockSkillLedger) Update(ctx context.Context, userID string, batch service.SkillBatch) error {
	return m.Called(ctx, userID, batch).Error(0)
}

func (m *MockSkillLedger) List(ctx context.Context, userID string) ([]models.UserSkill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSkill), args.Error(1)
}

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Lookup(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ListPublic(ctx context.Context, page, pageSize int) (*dto.PaginatedUserResponse, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedUserResponse), args.Error(1)
}

func (m *MockUserService) Profile(ctx context.Context, viewerID, targetID string) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, viewerID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

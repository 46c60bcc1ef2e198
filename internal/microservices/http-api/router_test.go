package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	httpapi "skillswap/internal/microservices/http-api"
	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RouterSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:      strings.Repeat("k", 32),
		AccessTokenTTL: time.Hour,
		RequestTimeout: 5 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		CORSOrigins:    []string{"http://localhost:3000"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.db = testutil.NewTestDB(s.T())
	svc := httpapi.NewServices(s.db, cfg, logger, cache.NewRedisMessageCache(nil, 0))

	router, err := httpapi.NewRouter(cfg, logger, s.db, svc)
	s.Require().NoError(err)
	s.router = router
}

func (s *RouterSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) register(name, email string) dto.AuthResponse {
	w := s.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		FullName: name,
		Email:    email,
		Password: "password123",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *RouterSuite) TestHealthz() {
	w := s.do(http.MethodGet, "/healthz", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestProtectedRoutesNeedToken() {
	w := s.do(http.MethodGet, "/api/swaps", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestRegisterThenProfile() {
	alice := s.register("Alice", "alice@example.com")

	w := s.do(http.MethodGet, "/api/users/me", alice.Token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var profile dto.ProfileResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &profile))
	s.Equal(alice.UserID, profile.ID)
	s.True(profile.IsSelf)
}

func (s *RouterSuite) TestSwapLifecycleOverHTTP() {
	alice := s.register("Alice", "alice@example.com")
	bob := s.register("Bob", "bob@example.com")

	w := s.do(http.MethodPost, "/api/swaps", alice.Token, dto.CreateSwapRequest{
		ReceiverID:    bob.UserID,
		OfferedSkills: []string{"Python"},
		WantedSkills:  []string{"Guitar"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var swap dto.SwapResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &swap))

	path := "/api/swaps/" + strconv.FormatInt(swap.ID, 10)
	w = s.do(http.MethodPost, path+"/status", bob.Token, dto.UpdateSwapStatusRequest{Status: "accepted"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, path+"/feedback", alice.Token, dto.SubmitFeedbackRequest{Rating: 4, Comment: "great"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var fb dto.SubmitFeedbackResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fb))
	s.Equal(4.0, fb.AverageRating)
	s.Equal(1, fb.TotalReviews)
}

func (s *RouterSuite) TestAdminRoutesNeedAdminRole() {
	alice := s.register("Alice", "alice@example.com")

	w := s.do(http.MethodGet, "/api/admin/swaps", alice.Token, nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.Require().NoError(s.db.Model(&models.User{}).Where("id = ?", alice.UserID).Update("role", models.RoleAdmin).Error)

	w = s.do(http.MethodGet, "/api/admin/swaps", alice.Token, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestBanTakesEffectImmediately() {
	admin := s.register("Admin", "admin@example.com")
	bob := s.register("Bob", "bob@example.com")
	s.Require().NoError(s.db.Model(&models.User{}).Where("id = ?", admin.UserID).Update("role", models.RoleAdmin).Error)

	w := s.do(http.MethodPost, "/api/admin/users/"+bob.UserID+"/ban", admin.Token, map[string]bool{"is_banned": true})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/users/me", bob.Token, nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterSuite) TestMalformedUserIDIsNotFound() {
	admin := s.register("Admin", "admin@example.com")
	s.Require().NoError(s.db.Model(&models.User{}).Where("id = ?", admin.UserID).Update("role", models.RoleAdmin).Error)

	w := s.do(http.MethodPost, "/api/admin/users/42/ban", admin.Token, map[string]bool{"is_banned": true})
	s.Equal(http.StatusNotFound, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/users/not-a-uuid", admin.Token, nil)
	s.Equal(http.StatusNotFound, w.Code, w.Body.String())
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func TestNewRouter_WithoutCORSOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: strings.Repeat("k", 32), AccessTokenTTL: time.Hour, RateLimitRPS: 1, RateLimitBurst: 1}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testutil.NewTestDB(t)

	router, err := httpapi.NewRouter(cfg, logger, db, httpapi.NewServices(db, cfg, logger, nil))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)


func TestRegister_Success(t *testing.T) {
	svc := new(MockAuthService)
	router := setupRouter()
	NewAuthHandler(svc).RegisterRoutes(router.Group("/api"))

	svc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
		return in.FullName == "Ada Lovelace" && in.Email == "ada@example.com" && in.IsPublic == nil
	})).Return("tok", &models.User{ID: "user-123"}, nil)

	w := doJSON(router, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	svc.AssertExpectations(t)
}

func TestRegister_ValidationFailure(t *testing.T) {
	svc := new(MockAuthService)
	router := setupRouter()
	NewAuthHandler(svc).RegisterRoutes(router.Group("/api"))

	w := doJSON(router, http.MethodPost, "/api/auth/register", map[string]string{
		"full_name": "   ",
		"email":     "not-an-email",
		"password":  "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(w)["code"])
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_EmailInUse(t *testing.T) {
	svc := new(MockAuthService)
	router := setupRouter()
	NewAuthHandler(svc).RegisterRoutes(router.Group("/api"))

	svc.On("Register", mock.Anything, mock.Anything).Return("", nil, service.ErrEmailInUse)

	w := doJSON(router, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		FullName: "Ada", Email: "ada@example.com", Password: "password123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email already registered", decodeError(w)["error"])
}

func TestLogin_Responses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"banned", service.ErrAccountBanned, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockAuthService)
			router := setupRouter()
			NewAuthHandler(svc).RegisterRoutes(router.Group("/api"))

			if tc.err == nil {
				svc.On("Login", mock.Anything, "ada@example.com", "password123").Return("tok", &models.User{ID: "u1"}, nil)
			} else {
				svc.On("Login", mock.Anything, "ada@example.com", "password123").Return("", nil, tc.err)
			}

			w := doJSON(router, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "ada@example.com", Password: "password123"})

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

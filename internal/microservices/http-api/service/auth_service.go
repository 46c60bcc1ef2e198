package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"skillswap/internal/apperror"
	"skillswap/internal/config"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"
	"skillswap/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = apperror.Unauthorized("invalid credentials")
	ErrInvalidToken       = apperror.Unauthorized("invalid token")
	ErrExpiredToken       = apperror.Unauthorized("token has expired")
	ErrEmailInUse         = apperror.Conflict("email already registered")
	ErrAccountInactive    = apperror.Forbidden("user account is inactive")
	ErrAccountBanned      = apperror.Forbidden("user account is banned")
)

// Claims is the access token payload
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	FullName     string
	Email        string
	Password     string
	Location     *string
	Availability *string
	IsPublic     *bool
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, user *models.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
	TokenTTL() time.Duration
}

type authService struct {
	userRepo       repository.UserRepository
	jwtSecret      []byte
	accessTokenTTL time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:       userRepo,
		jwtSecret:      []byte(cfg.JWTSecret),
		accessTokenTTL: cfg.AccessTokenTTL,
		logger:         logger,
		now:            time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account with an empty rating aggregate and returns
// an access token for it.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, *models.User, error) {
	email := normalizeEmail(in.Email)
	fullName := strings.TrimSpace(in.FullName)
	if email == "" || fullName == "" || in.Password == "" {
		return "", nil, apperror.Validation("full name, email, and password are required")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailInUse
	} else if !isNotFound(err) {
		return "", nil, internal("could not check email", err)
	}

	hashedPassword, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", nil, internal("could not hash password", err)
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	user := &models.User{
		Email:        email,
		FullName:     fullName,
		Password:     hashedPassword,
		Role:         models.RoleUser,
		Location:     in.Location,
		Availability: in.Availability,
		IsPublic:     isPublic,
		IsActive:     true,
	}
	if err := s.userRepo.CreateWithSummary(ctx, user); err != nil {
		if isDuplicate(err) {
			return "", nil, ErrEmailInUse
		}
		return "", nil, internal("could not create user", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, internal("could not issue token", err)
	}

	s.logger.Info("user_registered", "user_id", user.ID)
	return token, user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !isNotFound(err) {
			return "", nil, internal("could not load user", err)
		}
		// same cost as a wrong password
		auth.BurnCompare(password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrAccountInactive
	}
	if user.IsBanned {
		return "", nil, ErrAccountBanned
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, internal("could not issue token", err)
	}
	return token, user, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.accessTokenTTL
}

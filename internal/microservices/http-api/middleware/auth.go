package middleware

import (
	"context"
	"net/http"
	"strings"

	"skillswap/internal/apperror"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

type UserLookup interface {
	Lookup(ctx context.Context, userID string) (*models.User, error)
}

func abortWithError(c *gin.Context, status int, kind apperror.Kind, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg, "code": kind})
}

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// After the token checks out the user is reloaded so that a ban or
// deactivation takes effect on the next request, not at token expiry.
func AuthMiddleware(tokens TokenValidator, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, apperror.KindUnauthorized, "missing authorization header")
			return
		}

		// format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithError(c, http.StatusUnauthorized, apperror.KindUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, apperror.KindUnauthorized, apperror.PublicMessage(err))
			return
		}

		user, err := users.Lookup(c.Request.Context(), claims.UserID)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindNotFound {
				abortWithError(c, http.StatusUnauthorized, apperror.KindUnauthorized, "invalid token")
				return
			}
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, apperror.KindInternal, "internal server error")
			return
		}
		if !user.IsActive {
			abortWithError(c, http.StatusForbidden, apperror.KindForbidden, "user account is inactive")
			return
		}
		if user.IsBanned {
			abortWithError(c, http.StatusForbidden, apperror.KindForbidden, "user account is banned")
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)
		c.Set(ContextRole, user.Role)

		c.Next()
	}
}

// RequireRole checks if the user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != requiredRole {
			abortWithError(c, http.StatusForbidden, apperror.KindForbidden, "insufficient permissions")
			return
		}
		c.Next()
	}
}

// RequireAdmin is a convenience function for requiring admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

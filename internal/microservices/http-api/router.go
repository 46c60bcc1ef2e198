// Package httpapi assembles the gin engine for the skill swap API.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"skillswap/database"
	"skillswap/internal/config"
	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/handler"
	"skillswap/internal/microservices/http-api/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter registers every route. Public auth endpoints sit under /api/auth,
// everything else under /api requires a bearer token, and /api/admin
// additionally requires the admin role.
func NewRouter(cfg *config.Config, logger *slog.Logger, db *gorm.DB, svc *Services) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.RequestTimeout > 0 {
		router.Use(requestTimeout(cfg.RequestTimeout))
	}

	router.GET("/healthz", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	authLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler.NewAuthHandler(svc.Auth).RegisterRoutes(api.Group("", authLimiter.Middleware()))

	writeLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	protected := api.Group("", middleware.AuthMiddleware(svc.Auth, svc.Users), writeLimiter.Middleware())

	handler.NewSkillHandler(svc.Catalog, svc.Ledger).RegisterRoutes(protected)
	handler.NewSwapHandler(svc.Swaps).RegisterRoutes(protected)
	handler.NewFeedbackHandler(svc.Feedback).RegisterRoutes(protected)
	handler.NewUserHandler(svc.Users).RegisterRoutes(protected)

	moderation := handler.NewModerationHandler(svc.Moderation, svc.Swaps)
	moderation.RegisterPublicRoutes(protected)
	moderation.RegisterRoutes(protected.Group("/admin", middleware.RequireAdmin()))

	return router, nil
}

func requestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

package httpapi

import (
	"log/slog"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/microservices/http-api/repository"
	"skillswap/internal/microservices/http-api/service"

	"gorm.io/gorm"
)

// Services is the wired service layer shared by the API server and swapctl.
type Services struct {
	Auth       service.AuthService
	Users      service.UserService
	Catalog    service.SkillCatalog
	Ledger     service.SkillLedger
	Swaps      service.SwapService
	Feedback   service.FeedbackService
	Moderation service.ModerationService
}

// NewServices builds every repository and service on top of db.
func NewServices(db *gorm.DB, cfg *config.Config, logger *slog.Logger, messageCache cache.MessageCache) *Services {
	skillRepo := repository.NewSkillRepository(db)
	userSkillRepo := repository.NewUserSkillRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewPlatformMessageRepository(db)

	catalog := service.NewSkillCatalog(skillRepo, logger)
	ledger := service.NewSkillLedger(catalog, skillRepo, userSkillRepo, logger)
	feedback := service.NewFeedbackService(feedbackRepo, swapRepo, logger)

	return &Services{
		Auth:       service.NewAuthService(userRepo, cfg, logger),
		Users:      service.NewUserService(userRepo, ledger, feedback),
		Catalog:    catalog,
		Ledger:     ledger,
		Swaps:      service.NewSwapService(swapRepo, userRepo, catalog, service.SwapGuardsFromConfig(cfg), logger),
		Feedback:   feedback,
		Moderation: service.NewModerationService(userRepo, messageRepo, messageCache, logger),
	}
}

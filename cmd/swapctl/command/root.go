package command

// root.go defines the swapctl root command and the shared database session
// every subcommand runs against.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"skillswap/database"
	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/logger"
	httpapi "skillswap/internal/microservices/http-api"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// session is what a subcommand needs to do its work
type session struct {
	logger *slog.Logger
	db     *gorm.DB
	svc    *httpapi.Services
	close  func() error
}

// opener creates the session before a subcommand runs
type opener func() (*session, error)

func openFromEnv() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.OpenGorm(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	// A broadcast must drop the API server's cached feed; without redis the
	// CLI still works and the cache expires on its TTL
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	redisClient, err := cache.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
	cancel()
	if err != nil {
		appLogger.Warn("redis_unavailable", "error", err)
		redisClient = nil
	}
	messageCache := cache.NewRedisMessageCache(redisClient, cfg.CacheTTLDuration())

	return newSession(cfg, appLogger, db, messageCache,
		messageCache.Close,
		func() error { return database.Close(db) },
	), nil
}

// newSession wires the services over db. closers run in order when the
// command finishes.
func newSession(cfg *config.Config, appLogger *slog.Logger, db *gorm.DB, messageCache cache.MessageCache, closers ...func() error) *session {
	return &session{
		logger: appLogger,
		db:     db,
		svc:    httpapi.NewServices(db, cfg, appLogger, messageCache),
		close: func() error {
			var errs []error
			for _, c := range closers {
				errs = append(errs, c())
			}
			return errors.Join(errs...)
		},
	}
}

// NewRootCmd builds the command tree. open is called once per invocation.
func NewRootCmd(open opener) *cobra.Command {
	var s *session

	rootCmd := &cobra.Command{
		Use:   "swapctl",
		Short: "swapctl - skill swap administration",
		Long: `swapctl runs administrative tasks directly against the skill swap database:
- Apply schema migrations
- Ban and unban users
- Post and list platform messages
- Monitor swap requests

Connection settings come from the same environment variables as the API server
(DATABASE_URL, JWT_SECRET, ...), optionally loaded from .env.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			s, err = open()
			if err != nil {
				return fmt.Errorf("failed to open database session: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if s == nil || s.close == nil {
				return nil
			}
			return s.close()
		},
	}

	current := func() *session { return s }
	rootCmd.AddCommand(
		newMigrateCmd(current),
		newUsersCmd(current),
		newMessagesCmd(current),
		newSwapsCmd(current),
		newSkillsCmd(current),
	)
	return rootCmd
}

// Execute runs swapctl against the database configured in the environment.
func Execute() {
	if err := NewRootCmd(openFromEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"artisan-connect.backend/internal/config"
	"artisan-connect.backend/internal/infrastructure/ai"
	"artisan-connect.backend/internal/infrastructure/assets"
	"artisan-connect.backend/internal/infrastructure/registry"
	"artisan-connect.backend/internal/interfaces/http/handlers"
	"artisan-connect.backend/internal/interfaces/http/middleware"
	"artisan-connect.backend/internal/usecases"
	"artisan-connect.backend/pkg/jwt"
	"artisan-connect.backend/pkg/logger"
	"artisan-connect.backend/pkg/metrics"
	"artisan-connect.backend/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Registries live for the life of the process and hold all state.
	// A restart discards everything; there is no persistence behind them.
	userRegistry := registry.NewUserRegistry()
	contentRegistry := registry.NewContentRegistry()

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	reviewer := ai.NewSimulatedReviewer(time.Now().UnixNano())
	assetStore := assets.NewPlaceholderStore()
	seeder := usecases.NewRandomEngagementSeeder(time.Now().UnixNano())

	authUsecase := usecases.NewAuthUsecase(userRegistry, jwtService, sessionStore, cfg.Admin.Code)
	moderationUsecase := usecases.NewModerationUsecase(userRegistry, contentRegistry)
	craftUsecase := usecases.NewCraftUsecase(userRegistry, contentRegistry, reviewer, assetStore, seeder)
	mintUsecase := usecases.NewMintUsecase(contentRegistry)
	feedUsecase := usecases.NewFeedUsecase(userRegistry, contentRegistry)
	statsUsecase := usecases.NewStatsUsecase(userRegistry, contentRegistry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.Middleware())

	registerAPIV1Routes(r, routeDeps{
		authHandler:      handlers.NewAuthHandler(authUsecase),
		adminHandler:     handlers.NewAdminHandler(authUsecase, moderationUsecase),
		craftHandler:     handlers.NewCraftHandler(craftUsecase),
		nftHandler:       handlers.NewNFTHandler(mintUsecase),
		communityHandler: handlers.NewCommunityHandler(feedUsecase, statsUsecase),
		authMiddleware:   middleware.AuthMiddleware(jwtService),
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	_ "recipehub/docs" // swagger docs

	"recipehub/internal/auth"
	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/db"
	"recipehub/internal/handler"
	"recipehub/internal/health"
	"recipehub/internal/logger"
	"recipehub/internal/repository"
	"recipehub/internal/router"
	"recipehub/internal/scheduler"
	"recipehub/internal/service"
)

const activityBuffer = 256

// @title Recipe Hub API
// @version 1.0
// @description Recipe sharing API with comments, likes and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", false)
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database init")
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		db.Reset(gormDB)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	activityRepo := repository.NewActivityLogRepository(gormDB)

	jwtService := auth.NewJWTServiceWithTTL(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)
	hasher := auth.NewBcryptHasher()
	recorder := service.NewActivityRecorder(activityRepo, activityBuffer)

	authService := service.NewAuthService(userRepo, hasher, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, hasher, tokenStore, jwtService, recorder)
	recipeService := service.NewRecipeService(recipeRepo, recorder, cfg.PageSize)
	commentService := service.NewCommentService(commentRepo, recipeRepo, recorder)

	healthHandler := health.NewHandler(db.Pinger{DB: gormDB}, cacheClient)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, jwtService.SigningKey(), authService, router.Handlers{
		User:    handler.NewUserHandler(userService),
		Auth:    handler.NewAuthHandler(authService),
		Recipe:  handler.NewRecipeHandler(recipeService),
		Comment: handler.NewCommentHandler(commentService),
		Health:  healthHandler,
	})

	purger, err := scheduler.New(activityRepo, cfg.ActivityPurgeSchedule, cfg.ActivityRetention)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.ActivityPurgeSchedule).Msg("activity purge schedule")
	}
	purger.Start()

	log.Info().Str("url", cfg.SwaggerURL()).Msg("swagger documentation available")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	healthHandler.SetShutdown(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	purger.Stop()
	recorder.Close()
	if err := cacheClient.Close(); err != nil {
		log.Warn().Err(err).Msg("close cache")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}

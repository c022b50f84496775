package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/onamfest/scorekeeper/config"
	"github.com/onamfest/scorekeeper/db"
	"github.com/onamfest/scorekeeper/handlers"
	"github.com/onamfest/scorekeeper/repositories"
	api "github.com/onamfest/scorekeeper/routes"
	"github.com/onamfest/scorekeeper/services"
	"github.com/onamfest/scorekeeper/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	if cfg.UsesDefaultAdminPassword() {
		logger.Warn("ADMIN_PASSWORD is not set; the well-known default bootstrap password is in effect")
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migrations applied")

	var uploader storage.FileUploader
	if cfg.LogoUploadsEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("logo uploads disabled: R2 configuration is incomplete")
	}

	txManager := repositories.NewSQLTxManager(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	memberRepo := repositories.NewPostgresMemberRepository(dbConn)
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	resultRepo := repositories.NewPostgresResultRepository(dbConn)
	configRepo := repositories.NewPostgresPointsConfigRepository(dbConn)
	adminRepo := repositories.NewPostgresAdminRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(adminRepo)
	tokenService := services.NewTokenService(cfg.JWTSecretKey, cfg.TokenTTL)
	teamService := services.NewTeamService(teamRepo, uploader)
	memberService := services.NewMemberService(memberRepo, teamRepo)
	eventService := services.NewEventService(eventRepo)
	pointsConfigService := services.NewPointsConfigService(configRepo)
	settlementService := services.NewSettlementService(txManager, teamRepo, eventRepo, resultRepo, pointsConfigService)
	scoreboardService := services.NewScoreboardService(teamRepo)
	dashboardService := services.NewDashboardService(teamRepo, memberRepo, eventRepo, resultRepo)
	logger.Info("services initialized")

	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 30*time.Second)
	err = services.Bootstrap(bootstrapCtx, logger, authService, teamRepo, configRepo, services.BootstrapInput{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	})
	cancelBootstrap()
	if err != nil {
		logger.Error("failed to bootstrap initial data", slog.Any("error", err))
		os.Exit(1)
	}

	authHandler := handlers.NewAuthHandler(authService, tokenService)
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewMemberHandler(memberService)
	eventHandler := handlers.NewEventHandler(eventService)
	resultHandler := handlers.NewResultHandler(settlementService, resultRepo)
	pointsConfigHandler := handlers.NewPointsConfigHandler(pointsConfigService)
	scoreboardHandler := handlers.NewScoreboardHandler(scoreboardService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Config{
			CORSOrigins:        cfg.CORSOrigins,
			LogoUploadsEnabled: uploader != nil,
		},
		tokenService,
		authHandler,
		teamHandler,
		memberHandler,
		eventHandler,
		resultHandler,
		pointsConfigHandler,
		scoreboardHandler,
		dashboardHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("forced close failed", slog.Any("error", closeErr))
			}
		}
	}

	logger.Info("server stopped")
}

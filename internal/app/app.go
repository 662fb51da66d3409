package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/database"
	"github.com/avdeenkov/avito-tasker/internal/handlers"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/notify"
	"github.com/avdeenkov/avito-tasker/internal/repository"
	"github.com/avdeenkov/avito-tasker/internal/service"
	"github.com/avdeenkov/avito-tasker/internal/storage"
)

type App struct {
	server  *http.Server
	db      *sql.DB
	sweeper *service.Sweeper
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	files, err := storage.NewLocalFileStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Upload dir initialization failed", zap.Error(err))
		return nil, err
	}

	notifier, err := notify.NewTelegramNotifier(cfg.BotToken, cfg.ModeratorChatID)
	if err != nil {
		logger.Log.Error("Telegram notifier initialization failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	screenshotRepo := repository.NewScreenshotRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	referralRepo := repository.NewReferralRepository(db)

	userService := service.NewUserService(userRepo, cfg)
	taskService := service.NewTaskService(assignmentRepo, files, notifier, cfg)
	screenshotService := service.NewScreenshotService(screenshotRepo, assignmentRepo, files, cfg)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, notifier, cfg)
	referralService := service.NewReferralService(referralRepo, cfg)
	moderationService := service.NewModerationService(assignmentRepo, withdrawalRepo, cfg)

	handler := handlers.NewHandler(
		userService, taskService, screenshotService,
		withdrawalService, referralService, moderationService,
		cfg,
	)
	r := handlers.NewRouter(handler, cfg.SecretKey, cfg.ModeratorToken)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server:  server,
		db:      db,
		sweeper: service.NewSweeper(assignmentRepo, files, cfg.SweepInterval),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.sweeper.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}

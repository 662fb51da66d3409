package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/avdeenkov/avito-tasker/internal/app"
	"github.com/avdeenkov/avito-tasker/internal/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp()
	if err != nil {
		logger.Log.Fatal("failed to create app", zap.Error(err))
	}

	if err := a.Run(ctx); err != nil {
		logger.Log.Fatal("failed to run app", zap.Error(err))
	}
	logger.Log.Info("application started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("failed to shutdown app", zap.Error(err))
	}
	logger.Log.Info("application stopped")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/Freeeeeet/drivingschool_bot/internal/app"
	"github.com/Freeeeeet/drivingschool_bot/internal/config"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Sugar().Infow("Starting driving school bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Shutdown finished")
}

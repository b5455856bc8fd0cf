package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/config"
	"github.com/Freeeeeet/drivingschool_bot/internal/controller"
	"github.com/Freeeeeet/drivingschool_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/drivingschool_bot/internal/controller/handlers"
	"github.com/Freeeeeet/drivingschool_bot/internal/idgen"
	"github.com/Freeeeeet/drivingschool_bot/internal/notify"
	"github.com/Freeeeeet/drivingschool_bot/internal/ops"
	"github.com/Freeeeeet/drivingschool_bot/internal/repository"
	"github.com/Freeeeeet/drivingschool_bot/internal/scheduling"
	"github.com/Freeeeeet/drivingschool_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const storeLoadTimeout = 30 * time.Second

// Run собирает зависимости и работает до отмены ctx
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	migrator, err := NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return err
	}

	kv, closeKV, err := newKeyValueStore(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer closeKV()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}

	dispatcher := notify.NewDispatcher(newSender(cfg, b, logger), cfg.NotifyQueueSize, logger)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	store := scheduling.NewStore(
		repository.NewScheduleRepository(kv),
		dispatcher,
		idgen.NewUUIDGenerator(),
		logger,
	)

	opsServer := ops.NewServer(cfg.HTTPAddr, store, logger)
	opsServer.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Ops server shutdown failed", zap.Error(err))
		}
	}()

	// Команды до окончания загрузки отвечают "расписание загружается"
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, storeLoadTimeout)
		defer cancel()
		store.Load(loadCtx)
	}()

	userService := service.NewUserService(repository.NewUserRepository(pool), logger)
	cmdHandlers := handlers.NewHandlers(userService, store, cfg.Location(), logger)

	callbackHandler := callbacks.NewHandler(userService, store, logger)

	botController := controller.NewBotController(b, cmdHandlers, callbackHandler, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	logger.Info("Driving school bot started",
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageBackend),
	)

	return botController.Start(ctx)
}

// newKeyValueStore выбирает хранилище коллекций расписания по STORAGE_BACKEND
func newKeyValueStore(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) (repository.KeyValueStore, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageRedis:
		kv, err := repository.NewRedisKV(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return kv, closer(kv, "redis", logger), nil
	case config.StorageMemory:
		logger.Warn("Using in-memory schedule storage, data is lost on restart")
		return repository.NewMemoryKV(), func() {}, nil
	default:
		return repository.NewPostgresKV(pool), func() {}, nil
	}
}

// newSender уведомления уходят в чат NOTIFY_CHAT_ID, без него только в лог
func newSender(cfg *config.Config, b *bot.Bot, logger *zap.Logger) notify.Sender {
	if cfg.NotifyChatID != 0 {
		return notify.NewTelegramSender(b, cfg.NotifyChatID)
	}
	return notify.NewLogSender(logger)
}

func closer(c io.Closer, name string, logger *zap.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Error("Failed to close "+name, zap.Error(err))
		}
	}
}

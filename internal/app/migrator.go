package app

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// Migrator обёртка над goose с миграциями, встроенными в бинарник
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMigrator создаёт новый мигратор
func NewMigrator(pool *pgxpool.Pool, logger *zap.Logger) (*Migrator, error) {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	// Goose работает с *sql.DB, поэтому создаём его из пула
	return &Migrator{
		db:     stdlib.OpenDBFromPool(pool),
		logger: logger,
	}, nil
}

// Run применяет все pending миграции
func (mg *Migrator) Run(ctx context.Context) error {
	mg.logger.Info("Applying database migrations")

	if err := goose.UpContext(ctx, mg.db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := mg.Version(ctx)
	if err != nil {
		return err
	}

	mg.logger.Info("Migrations applied", zap.Int64("version", version))
	return nil
}

// Version показывает текущую версию миграций
func (mg *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, mg.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}

// Close закрывает sql.DB, пул управляется в main
func (mg *Migrator) Close() error {
	return mg.db.Close()
}

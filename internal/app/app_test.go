package app

import (
	"context"
	"testing"

	"github.com/Freeeeeet/drivingschool_bot/internal/config"
	"github.com/Freeeeeet/drivingschool_bot/internal/notify"
	"github.com/Freeeeeet/drivingschool_bot/internal/repository"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbeddedMigrations(t *testing.T) {
	goose.SetBaseFS(embedMigrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, int64(1), migrations[0].Version)
	assert.Equal(t, int64(2), migrations[1].Version)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		logger, err := NewLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestMemoryKeyValueStore(t *testing.T) {
	cfg := &config.Config{StorageBackend: config.StorageMemory}

	kv, closeKV, err := newKeyValueStore(context.Background(), cfg, nil, zap.NewNop())
	require.NoError(t, err)
	defer closeKV()

	assert.IsType(t, &repository.MemoryKV{}, kv)
}

func TestNewSenderWithoutChat(t *testing.T) {
	sender := newSender(&config.Config{}, nil, zap.NewNop())
	assert.IsType(t, &notify.LogSender{}, sender)
}

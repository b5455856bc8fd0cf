package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`[1,2]`)
	require.NoError(t, kv.Set(ctx, "a:1", value))
	require.NoError(t, kv.Set(ctx, "a:0", []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, "b:0", []byte(`{}`)))

	// Изменение исходного буфера не влияет на сохранённое значение
	value[1] = '9'
	got, ok, err := kv.Get(ctx, "a:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(got))

	keys, err := kv.List(ctx, "a:")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:0", "a:1"}, keys)
}

func TestRedisKVGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := NewRedisKVFromClient(db)
	ctx := context.Background()

	mock.ExpectGet(BookingsKey).SetVal(`[]`)
	mock.ExpectGet(AvailabilityKey).RedisNil()
	mock.ExpectGet("broken").SetErr(errors.New("connection reset"))

	got, ok, err := kv.Get(ctx, BookingsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(got))

	_, ok, err = kv.Get(ctx, AvailabilityKey)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = kv.Get(ctx, "broken")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKVSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := NewRedisKVFromClient(db)
	ctx := context.Background()

	mock.ExpectSet(BookingsKey, []byte(`[]`), 0).SetVal("OK")

	require.NoError(t, kv.Set(ctx, BookingsKey, []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKVList(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := NewRedisKVFromClient(db)
	ctx := context.Background()

	mock.ExpectScan(0, KeyPrefix+"*", redisScanCount).SetVal([]string{BookingsKey}, 42)
	mock.ExpectScan(42, KeyPrefix+"*", redisScanCount).SetVal([]string{AvailabilityKey}, 0)

	keys, err := kv.List(ctx, KeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{AvailabilityKey, BookingsKey}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryOverRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewScheduleRepository(NewRedisKVFromClient(db))
	ctx := context.Background()

	mock.ExpectGet(AvailabilityKey).SetErr(redis.Nil)

	slots, err := repo.LoadSlots(ctx)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

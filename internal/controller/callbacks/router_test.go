package callbacks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/controller/callbacks/keyboard"
	"github.com/Freeeeeet/drivingschool_bot/internal/idgen"
	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/Freeeeeet/drivingschool_bot/internal/repository"
	"github.com/Freeeeeet/drivingschool_bot/internal/scheduling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// usersByTelegramID пользователи для тестов, ключ - Telegram ID
type usersByTelegramID map[int64]*model.User

func (u usersByTelegramID) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	if telegramID < 0 {
		return nil, errors.New("db down")
	}
	return u[telegramID], nil
}

type discardNotifier struct{}

func (discardNotifier) Dispatch(string, string) {}

var trainerID int64 = 1

var testUsers = usersByTelegramID{
	100: {ID: trainerID, TelegramID: 100, Role: model.RoleTrainer},
	200: {ID: 2, TelegramID: 200, Role: model.RoleStudent, TrainerID: &trainerID},
	300: {ID: 3, TelegramID: 300, Role: model.RoleStudent, TrainerID: &trainerID},
	500: {ID: 5, TelegramID: 500, Role: model.RoleTrainer},
}

// newPendingBooking стор с одной заявкой ученика 2
func newPendingBooking(t *testing.T) (*Handler, *scheduling.Store, string) {
	t.Helper()
	ctx := context.Background()

	store := scheduling.NewStore(
		repository.NewScheduleRepository(repository.NewMemoryKV()),
		discardNotifier{},
		idgen.NewSequence("b"),
		zap.NewNop(),
	)
	store.Load(ctx)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	booking, err := store.RequestBooking(ctx, testUsers[200].Actor(), "2", start, start.Add(time.Hour))
	require.NoError(t, err)

	return NewHandler(testUsers, store, zap.NewNop()), store, booking.ID
}

func TestRouteApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("инструктор подтверждает", func(t *testing.T) {
		h, store, id := newPendingBooking(t)

		res := h.Route(ctx, 100, keyboard.ApproveBooking+id)

		assert.False(t, res.Alert)
		assert.Equal(t, "✅ Запись подтверждена", res.Status)
		assert.Equal(t, model.BookingStatusApproved, store.BookingsForStudent("2")[0].Status)
	})

	t.Run("ученик не может подтвердить", func(t *testing.T) {
		h, store, id := newPendingBooking(t)

		res := h.Route(ctx, 200, keyboard.ApproveBooking+id)

		assert.True(t, res.Alert)
		assert.Empty(t, res.Status)
		assert.Equal(t, model.BookingStatusPending, store.BookingsForStudent("2")[0].Status)
	})

	t.Run("запись уже удалена", func(t *testing.T) {
		h, _, _ := newPendingBooking(t)

		res := h.Route(ctx, 100, keyboard.ApproveBooking+"missing")

		assert.True(t, res.Alert)
		assert.Equal(t, "❌ Запись уже удалена", res.Status)
	})

	t.Run("заявка к другому инструктору", func(t *testing.T) {
		h, store, id := newPendingBooking(t)

		res := h.Route(ctx, 500, keyboard.ApproveBooking+id)

		assert.True(t, res.Alert)
		assert.Empty(t, res.Status)
		assert.Equal(t, model.BookingStatusPending, store.BookingsForStudent("2")[0].Status)
	})
}

func TestRouteReject(t *testing.T) {
	ctx := context.Background()

	t.Run("ученик отменяет свою заявку", func(t *testing.T) {
		h, store, id := newPendingBooking(t)

		res := h.Route(ctx, 200, keyboard.RejectBooking+id)

		assert.Equal(t, "🗑 Запись удалена", res.Status)
		assert.Empty(t, store.BookingsForStudent("2"))
	})

	t.Run("чужая заявка", func(t *testing.T) {
		h, store, id := newPendingBooking(t)

		res := h.Route(ctx, 300, keyboard.RejectBooking+id)

		assert.True(t, res.Alert)
		assert.Len(t, store.BookingsForStudent("2"), 1)
	})

	t.Run("другой инструктор", func(t *testing.T) {
		h, store, id := newPendingBooking(t)

		res := h.Route(ctx, 500, keyboard.RejectBooking+id)

		assert.True(t, res.Alert)
		assert.Empty(t, res.Status)
		assert.Len(t, store.BookingsForStudent("2"), 1)
	})

	t.Run("инструктор отклоняет заявку к себе", func(t *testing.T) {
		h, store, id := newPendingBooking(t)

		res := h.Route(ctx, 100, keyboard.RejectBooking+id)

		assert.Equal(t, "🗑 Запись удалена", res.Status)
		assert.Empty(t, store.BookingsForStudent("2"))
	})
}

func TestRouteErrors(t *testing.T) {
	ctx := context.Background()
	h, _, id := newPendingBooking(t)

	res := h.Route(ctx, 100, "unknown:1")
	assert.Equal(t, "❌ Неверный формат", res.Answer)

	res = h.Route(ctx, 999, keyboard.ApproveBooking+id)
	assert.Contains(t, res.Answer, "/start")

	res = h.Route(ctx, -1, keyboard.ApproveBooking+id)
	assert.Equal(t, "❌ Ошибка получения пользователя", res.Answer)
}

func TestRouteBeforeLoad(t *testing.T) {
	store := scheduling.NewStore(
		repository.NewScheduleRepository(repository.NewMemoryKV()),
		discardNotifier{},
		idgen.NewSequence("b"),
		zap.NewNop(),
	)
	h := NewHandler(testUsers, store, zap.NewNop())

	res := h.Route(context.Background(), 100, keyboard.ApproveBooking+"b1")

	assert.Equal(t, "⏳ Расписание загружается", res.Answer)
	assert.Empty(t, res.Status)
}

func TestIsMessageNotModified(t *testing.T) {
	assert.True(t, isMessageNotModified(errors.New("bad request, Bad Request: message is not modified")))
	assert.False(t, isMessageNotModified(errors.New("forbidden")))
	assert.False(t, isMessageNotModified(nil))
}

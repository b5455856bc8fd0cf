package callbacks

import (
	"context"
	"errors"
	"strings"

	"github.com/Freeeeeet/drivingschool_bot/internal/controller/callbacks/keyboard"
	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/Freeeeeet/drivingschool_bot/internal/scheduling"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// UserLookup поиск пользователя по Telegram ID
type UserLookup interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
}

// Handler обрабатывает нажатия на inline кнопки
type Handler struct {
	users  UserLookup
	store  *scheduling.Store
	logger *zap.Logger
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(users UserLookup, store *scheduling.Store, logger *zap.Logger) *Handler {
	return &Handler{
		users:  users,
		store:  store,
		logger: logger,
	}
}

// Result итог обработки callback
type Result struct {
	Answer string // всплывающий ответ
	Alert  bool
	Status string // строка, дописываемая к исходному сообщению; пустая - сообщение не меняется
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	res := h.Route(ctx, callback.From.ID, callback.Data)

	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callback.ID,
		Text:            res.Answer,
		ShowAlert:       res.Alert,
	}); err != nil {
		h.logger.Warn("Failed to answer callback", zap.Error(err))
	}

	msg := callback.Message.Message
	if res.Status == "" || msg == nil {
		return
	}

	// Без ReplyMarkup кнопки убираются
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      msg.Text + "\n\n" + res.Status,
	})
	if err != nil && !isMessageNotModified(err) {
		h.logger.Error("Failed to edit callback message", zap.Error(err))
	}
}

// Route выполняет действие из callback data от имени пользователя telegramID
func (h *Handler) Route(ctx context.Context, telegramID int64, data string) Result {
	status, bookingID, ok := keyboard.ParseBookingAction(data)
	if !ok {
		return Result{Answer: "❌ Неверный формат", Alert: true}
	}

	user, err := h.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to get user in callback", zap.Error(err), zap.Int64("telegram_id", telegramID))
		return Result{Answer: "❌ Ошибка получения пользователя", Alert: true}
	}
	if user == nil {
		return Result{Answer: "❌ Пользователь не найден. Используйте /start", Alert: true}
	}

	if !h.store.IsLoaded() {
		return Result{Answer: "⏳ Расписание загружается"}
	}

	actor := user.Actor()

	if status == model.BookingStatusApproved && !user.IsTrainer() {
		return Result{Answer: "❌ Подтверждать записи может только инструктор", Alert: true}
	}

	// Удалённая запись: кнопки убираются. Чужая: только ответ, сообщение не меняется.
	booking, ok := h.store.FindBooking(bookingID)
	if !ok {
		return bookingGone
	}
	if !booking.BelongsTo(actor) {
		return Result{Answer: "❌ Запись не найдена", Alert: true}
	}

	if _, err := h.store.UpdateBookingStatus(ctx, actor, bookingID, status); err != nil {
		if errors.Is(err, scheduling.ErrBookingNotFound) {
			return bookingGone
		}
		return Result{Answer: "❌ Произошла ошибка", Alert: true}
	}

	if status == model.BookingStatusApproved {
		return Result{Answer: "✅ Подтверждено", Status: "✅ Запись подтверждена"}
	}
	return Result{Answer: "🗑 Удалено", Status: "🗑 Запись удалена"}
}

var bookingGone = Result{Answer: "❌ Запись не найдена", Alert: true, Status: "❌ Запись уже удалена"}

// isMessageNotModified повторное нажатие на ту же кнопку не ошибка
func isMessageNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

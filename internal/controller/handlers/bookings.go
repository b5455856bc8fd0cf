package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/drivingschool_bot/internal/controller/callbacks/keyboard"
	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Book обрабатывает /book. Ученик: /book <начало> <конец>, инструктор: /book <id ученика> <начало> <конец>.
func (h *Handlers) Book(ctx context.Context, user *model.User, args []string) string {
	if user.IsTrainer() {
		return h.bookForStudent(ctx, user, args)
	}

	if len(args) != 2 {
		return usageBookStudent
	}
	if user.TrainerID == nil {
		return textNoTrainer
	}

	start, end, err := h.parseInterval(args[0], args[1])
	if err != nil {
		return h.argsError(err, usageBookStudent)
	}

	booking, err := h.store.RequestBooking(ctx, user.Actor(), user.ActorID(), start, end)
	if err != nil {
		return errorText(err)
	}

	return "📨 Заявка отправлена инструктору\n\n" + h.FormatBooking(booking)
}

func (h *Handlers) bookForStudent(ctx context.Context, trainer *model.User, args []string) string {
	if len(args) != 3 {
		return usageBookTrainer
	}

	studentID, err := parseUserID(args[0])
	if err != nil {
		return usageBookTrainer
	}

	start, end, err := h.parseInterval(args[1], args[2])
	if err != nil {
		return h.argsError(err, usageBookTrainer)
	}

	student, err := h.userService.GetByID(ctx, studentID)
	if err != nil {
		h.logger.Error("Failed to get student", zap.Int64("student_id", studentID), zap.Error(err))
		return textInternalError
	}
	if student == nil {
		return textStudentAbsent
	}

	booking, err := h.store.RequestBooking(ctx, trainer.Actor(), student.ActorID(), start, end)
	if err != nil {
		return errorText(err)
	}

	return "✅ Ученик записан\n\n" + h.FormatBooking(booking)
}

// MyBookings обрабатывает /mybookings
func (h *Handlers) MyBookings(_ context.Context, user *model.User, _ []string) string {
	return h.formatBookings("📋 Мои записи:", h.store.MyBookings(user.Actor()))
}

// StudentBookings обрабатывает /studentbookings <id ученика>
func (h *Handlers) StudentBookings(_ context.Context, user *model.User, args []string) string {
	if !user.IsTrainer() {
		return textTrainerOnly
	}
	if len(args) != 1 {
		return usageStudentBooking
	}

	studentID, err := parseUserID(args[0])
	if err != nil {
		return usageStudentBooking
	}

	title := fmt.Sprintf("📋 Записи ученика %d:", studentID)
	return h.formatBookings(title, h.store.BookingsForStudent(fmt.Sprint(studentID)))
}

// Approve обрабатывает /approve <id записи>. Инструктор подтверждает только заявки к себе.
func (h *Handlers) Approve(ctx context.Context, user *model.User, args []string) string {
	if !user.IsTrainer() {
		return textTrainerOnly
	}
	if len(args) != 1 {
		return usageApprove
	}

	actor := user.Actor()
	if !h.ownsBooking(actor, args[0]) {
		return textBookingAbsent
	}

	booking, err := h.store.UpdateBookingStatus(ctx, actor, args[0], model.BookingStatusApproved)
	if err != nil {
		return errorText(err)
	}

	return "✅ Запись подтверждена\n\n" + h.FormatBooking(*booking)
}

// Reject обрабатывает /reject <id записи>. Ученик отменяет свою запись, инструктор - запись к себе.
func (h *Handlers) Reject(ctx context.Context, user *model.User, args []string) string {
	if len(args) != 1 {
		return usageReject
	}

	actor := user.Actor()
	if !h.ownsBooking(actor, args[0]) {
		return textBookingAbsent
	}

	if _, err := h.store.UpdateBookingStatus(ctx, actor, args[0], model.BookingStatusRejected); err != nil {
		return errorText(err)
	}

	return "🗑 Запись удалена."
}

// EditBooking обрабатывает /editbooking <id записи> <id ученика> <начало> <конец>
func (h *Handlers) EditBooking(ctx context.Context, user *model.User, args []string) string {
	if !user.IsTrainer() {
		return textTrainerOnly
	}
	if len(args) != 4 {
		return usageEditBooking
	}

	studentID, err := parseUserID(args[1])
	if err != nil {
		return usageEditBooking
	}

	start, end, err := h.parseInterval(args[2], args[3])
	if err != nil {
		return h.argsError(err, usageEditBooking)
	}

	booking, err := h.store.UpdateBooking(ctx, user.Actor(), args[0], fmt.Sprint(studentID), start, end)
	if err != nil {
		return errorText(err)
	}

	return "✏️ Запись изменена\n\n" + h.FormatBooking(booking)
}

func (h *Handlers) ownsBooking(actor *model.Actor, bookingID string) bool {
	booking, ok := h.store.FindBooking(bookingID)
	return ok && booking.BelongsTo(actor)
}

// HandlePending обрабатывает /pending: каждая заявка инструктору отдельным сообщением с кнопками
func (h *Handlers) HandlePending(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	chatID := update.Message.Chat.ID

	switch {
	case !h.store.IsLoaded():
		h.sendMessage(ctx, b, chatID, textStoreLoading)
		return
	case !user.IsTrainer():
		h.sendMessage(ctx, b, chatID, textTrainerOnly)
		return
	}

	pending := h.PendingBookings(user)
	if len(pending) == 0 {
		h.sendMessage(ctx, b, chatID, "✅ Новых заявок нет.")
		return
	}

	for _, booking := range pending {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        h.FormatBooking(booking),
			ReplyMarkup: keyboard.BookingActions(booking),
		})
		if err != nil {
			h.logger.Error("Failed to send pending booking",
				zap.String("booking_id", booking.ID),
				zap.Error(err),
			)
		}
	}
}

// PendingBookings заявки, ожидающие решения инструктора
func (h *Handlers) PendingBookings(trainer *model.User) []model.Booking {
	var pending []model.Booking
	for _, b := range h.store.MyBookings(trainer.Actor()) {
		if b.IsPending() {
			pending = append(pending, b)
		}
	}
	return pending
}

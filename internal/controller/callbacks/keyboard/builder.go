package keyboard

import (
	"strings"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// Форматы callback data для действий с записью
const (
	ApproveBooking = "approve_booking:" // approve_booking:<id записи>
	RejectBooking  = "reject_booking:"  // reject_booking:<id записи>
)

// Builder упрощает создание inline клавиатур
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

// NewBuilder создаёт новый builder клавиатуры
func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row добавляет новый ряд кнопок
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Button создаёт кнопку
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// Build создаёт финальную клавиатуру
func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// BookingActions кнопки под записью: для pending подтвердить и отклонить, для остальных только удалить
func BookingActions(booking model.Booking) *models.InlineKeyboardMarkup {
	builder := NewBuilder()
	if booking.IsPending() {
		return builder.Row(
			Button("✅ Подтвердить", ApproveBooking+booking.ID),
			Button("🚫 Отклонить", RejectBooking+booking.ID),
		).Build()
	}
	return builder.Row(Button("🗑 Удалить", RejectBooking+booking.ID)).Build()
}

// ParseBookingAction разбирает callback data. ok=false для чужого формата или пустого id.
func ParseBookingAction(data string) (status model.BookingStatus, bookingID string, ok bool) {
	switch {
	case strings.HasPrefix(data, ApproveBooking):
		status, bookingID = model.BookingStatusApproved, strings.TrimPrefix(data, ApproveBooking)
	case strings.HasPrefix(data, RejectBooking):
		status, bookingID = model.BookingStatusRejected, strings.TrimPrefix(data, RejectBooking)
	default:
		return "", "", false
	}
	return status, bookingID, bookingID != ""
}

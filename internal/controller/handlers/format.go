package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/Freeeeeet/drivingschool_bot/internal/scheduling"
)

// BookingStatusDisplay содержит emoji и текст для отображения статуса
type BookingStatusDisplay struct {
	Emoji string
	Text  string
}

// GetBookingStatusDisplay возвращает emoji и текст для статуса записи
func GetBookingStatusDisplay(status model.BookingStatus) BookingStatusDisplay {
	displays := map[model.BookingStatus]BookingStatusDisplay{
		model.BookingStatusPending:  {"⏳", "Ожидает одобрения"},
		model.BookingStatusApproved: {"✅", "Подтверждена"},
		model.BookingStatusRejected: {"🚫", "Отклонена"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return BookingStatusDisplay{"❓", "Неизвестно"}
}

// formatInterval форматирует интервал: дата и время начала, время окончания
func (h *Handlers) formatInterval(start, end time.Time) string {
	start, end = start.In(h.location), end.In(h.location)
	if start.YearDay() == end.YearDay() && start.Year() == end.Year() {
		return fmt.Sprintf("%s-%s", start.Format(displayLayout), end.Format("15:04"))
	}
	return fmt.Sprintf("%s - %s", start.Format(displayLayout), end.Format(displayLayout))
}

// FormatBooking форматирует запись для отображения
func (h *Handlers) FormatBooking(b model.Booking) string {
	display := GetBookingStatusDisplay(b.Status)

	return fmt.Sprintf(
		"%s Запись %s\n"+
			"📅 %s\n"+
			"👤 Ученик: %s (🎨 %s)\n"+
			"📊 Статус: %s",
		display.Emoji,
		b.ID,
		h.formatInterval(b.Start, b.End),
		b.StudentID,
		h.store.StudentColor(b.StudentID),
		display.Text,
	)
}

// FormatSlot форматирует слот доступности
func (h *Handlers) FormatSlot(s model.AvailabilitySlot) string {
	return fmt.Sprintf("🟢 %s\n   id: %s", h.formatInterval(s.Start, s.End), s.ID)
}

func (h *Handlers) formatBookings(title string, bookings []model.Booking) string {
	if len(bookings) == 0 {
		return title + "\n\nЗаписей нет."
	}

	var sb strings.Builder
	sb.WriteString(title)
	for _, b := range bookings {
		sb.WriteString("\n\n")
		sb.WriteString(h.FormatBooking(b))
	}
	return sb.String()
}

func (h *Handlers) formatSlots(title string, slots []model.AvailabilitySlot) string {
	if len(slots) == 0 {
		return title + "\n\nСвободных окон нет."
	}

	var sb strings.Builder
	sb.WriteString(title)
	for _, s := range slots {
		sb.WriteString("\n\n")
		sb.WriteString(h.FormatSlot(s))
	}
	return sb.String()
}

// errorText переводит ошибку планировщика в сообщение пользователю
func errorText(err error) string {
	switch {
	case errors.Is(err, scheduling.ErrForbidden):
		return textTrainerOnly
	case errors.Is(err, scheduling.ErrNotAuthenticated):
		return textUserNotFound
	case errors.Is(err, scheduling.ErrTrainerNotFound):
		return textNoTrainer
	case errors.Is(err, scheduling.ErrSlotNotFound):
		return textSlotNotFound
	case errors.Is(err, scheduling.ErrBookingNotFound):
		return textBookingAbsent
	case errors.Is(err, model.ErrInvalidInterval):
		return textBadInterval
	default:
		return textInternalError
	}
}

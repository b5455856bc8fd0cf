package scheduling

import (
	"fmt"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
)

// EventKind тип события жизненного цикла записи
type EventKind string

const (
	EventBookingRequested EventKind = "booking_requested" // ученик запросил занятие
	EventLessonBooked     EventKind = "lesson_booked"     // инструктор сам записал ученика
	EventBookingApproved  EventKind = "booking_approved"
	EventBookingDeleted   EventKind = "booking_deleted"
)

// Event событие, которое нужно превратить в уведомление после применения перехода
type Event struct {
	Kind    EventKind
	Booking model.Booking
}

// Notification возвращает заголовок и текст уведомления для события
func (e Event) Notification() (title, body string) {
	when := formatLessonTime(e.Booking)

	switch e.Kind {
	case EventBookingRequested:
		return "Новая заявка на занятие", fmt.Sprintf("Ученик %s просит занятие %s", e.Booking.StudentID, when)
	case EventLessonBooked:
		return "Новое занятие", fmt.Sprintf("Занятие с учеником %s назначено на %s", e.Booking.StudentID, when)
	case EventBookingApproved:
		return "Запись подтверждена", fmt.Sprintf("Занятие %s подтверждено", when)
	case EventBookingDeleted:
		return "Запись удалена", fmt.Sprintf("Занятие %s отменено", when)
	default:
		return "Расписание", fmt.Sprintf("Изменение записи %s", e.Booking.ID)
	}
}

func formatLessonTime(b model.Booking) string {
	return fmt.Sprintf("%s-%s", b.Start.Format("02.01.2006 15:04"), b.End.Format("15:04"))
}

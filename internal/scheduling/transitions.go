package scheduling

import (
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
)

// State две коллекции, которыми владеет планировщик
type State struct {
	Slots    []model.AvailabilitySlot
	Bookings []model.Booking // новые записи в начале
}

// Changes какие коллекции изменились и должны быть сохранены
type Changes uint8

const (
	ChangedSlots Changes = 1 << iota
	ChangedBookings
)

// Outcome результат чистого перехода: новое состояние и события для уведомлений
type Outcome struct {
	State   State
	Changed Changes
	Events  []Event
}

// Переходы ниже не имеют побочных эффектов и не изменяют входное состояние.

func requireTrainer(actor *model.Actor) error {
	if actor == nil {
		return ErrNotAuthenticated
	}
	if !actor.IsTrainer() {
		return ErrForbidden
	}
	return nil
}

func addAvailability(st State, actor *model.Actor, id string, start, end time.Time) (Outcome, model.AvailabilitySlot, error) {
	if err := requireTrainer(actor); err != nil {
		return Outcome{State: st}, model.AvailabilitySlot{}, err
	}

	slot := model.AvailabilitySlot{
		ID:        id,
		TrainerID: actor.ID,
		Start:     start,
		End:       end,
	}

	slots := make([]model.AvailabilitySlot, 0, len(st.Slots)+1)
	slots = append(slots, st.Slots...)
	slots = append(slots, slot)

	return Outcome{
		State:   State{Slots: slots, Bookings: st.Bookings},
		Changed: ChangedSlots,
	}, slot, nil
}

// removeAvailability удаляет слот по id. Принадлежность слота конкретному инструктору не проверяется.
func removeAvailability(st State, actor *model.Actor, slotID string) (Outcome, error) {
	if err := requireTrainer(actor); err != nil {
		return Outcome{State: st}, err
	}

	idx := indexOfSlot(st.Slots, slotID)
	if idx < 0 {
		return Outcome{State: st}, ErrSlotNotFound
	}

	slots := make([]model.AvailabilitySlot, 0, len(st.Slots)-1)
	slots = append(slots, st.Slots[:idx]...)
	slots = append(slots, st.Slots[idx+1:]...)

	return Outcome{
		State:   State{Slots: slots, Bookings: st.Bookings},
		Changed: ChangedSlots,
	}, nil
}

func updateAvailability(st State, actor *model.Actor, slotID string, start, end time.Time) (Outcome, model.AvailabilitySlot, error) {
	if err := requireTrainer(actor); err != nil {
		return Outcome{State: st}, model.AvailabilitySlot{}, err
	}

	idx := indexOfSlot(st.Slots, slotID)
	if idx < 0 {
		return Outcome{State: st}, model.AvailabilitySlot{}, ErrSlotNotFound
	}

	slots := append([]model.AvailabilitySlot(nil), st.Slots...)
	slots[idx].Start = start
	slots[idx].End = end

	return Outcome{
		State:   State{Slots: slots, Bookings: st.Bookings},
		Changed: ChangedSlots,
	}, slots[idx], nil
}

// requestBooking создаёт запись. Инструктор записывает ученика сразу в approved,
// ученик создаёт заявку в pending к своему инструктору.
func requestBooking(st State, actor *model.Actor, id, studentID string, start, end, now time.Time) (Outcome, model.Booking, error) {
	if actor == nil {
		return Outcome{State: st}, model.Booking{}, ErrNotAuthenticated
	}

	booking := model.Booking{
		ID:        id,
		StudentID: studentID,
		Start:     start,
		End:       end,
		CreatedAt: now,
	}

	var kind EventKind
	switch {
	case actor.IsTrainer():
		booking.TrainerID = actor.ID
		booking.Status = model.BookingStatusApproved
		booking.CreatedBy = model.CreatedByTrainer
		kind = EventLessonBooked
	case actor.IsStudent() && actor.TrainerID != "":
		booking.TrainerID = actor.TrainerID
		booking.Status = model.BookingStatusPending
		booking.CreatedBy = model.CreatedByStudent
		kind = EventBookingRequested
	default:
		// Ученик без инструктора и неизвестная роль
		return Outcome{State: st}, model.Booking{}, ErrTrainerNotFound
	}

	bookings := make([]model.Booking, 0, len(st.Bookings)+1)
	bookings = append(bookings, booking)
	bookings = append(bookings, st.Bookings...)

	return Outcome{
		State:   State{Slots: st.Slots, Bookings: bookings},
		Changed: ChangedBookings,
		Events:  []Event{{Kind: kind, Booking: booking}},
	}, booking, nil
}

// updateBookingStatus одобряет или отклоняет запись.
// Отклонение удаляет запись из коллекции независимо от текущего статуса.
// Возвращает обновлённую запись для approved и nil для rejected.
func updateBookingStatus(st State, actor *model.Actor, bookingID string, status model.BookingStatus) (Outcome, *model.Booking, error) {
	if actor == nil {
		return Outcome{State: st}, nil, ErrNotAuthenticated
	}
	if status != model.BookingStatusApproved && status != model.BookingStatusRejected {
		return Outcome{State: st}, nil, ErrInvalidStatus
	}

	idx := indexOfBooking(st.Bookings, bookingID)
	if idx < 0 {
		return Outcome{State: st}, nil, ErrBookingNotFound
	}

	if status == model.BookingStatusRejected {
		removed := st.Bookings[idx]
		bookings := make([]model.Booking, 0, len(st.Bookings)-1)
		bookings = append(bookings, st.Bookings[:idx]...)
		bookings = append(bookings, st.Bookings[idx+1:]...)

		return Outcome{
			State:   State{Slots: st.Slots, Bookings: bookings},
			Changed: ChangedBookings,
			Events:  []Event{{Kind: EventBookingDeleted, Booking: removed}},
		}, nil, nil
	}

	bookings := append([]model.Booking(nil), st.Bookings...)
	bookings[idx].Status = model.BookingStatusApproved
	approved := bookings[idx]

	return Outcome{
		State:   State{Slots: st.Slots, Bookings: bookings},
		Changed: ChangedBookings,
		Events:  []Event{{Kind: EventBookingApproved, Booking: approved}},
	}, &approved, nil
}

// updateBooking переписывает ученика и интервал, статус не меняется
func updateBooking(st State, actor *model.Actor, bookingID, studentID string, start, end time.Time) (Outcome, model.Booking, error) {
	if err := requireTrainer(actor); err != nil {
		return Outcome{State: st}, model.Booking{}, err
	}

	idx := indexOfBooking(st.Bookings, bookingID)
	if idx < 0 {
		return Outcome{State: st}, model.Booking{}, ErrBookingNotFound
	}

	bookings := append([]model.Booking(nil), st.Bookings...)
	bookings[idx].StudentID = studentID
	bookings[idx].Start = start
	bookings[idx].End = end

	return Outcome{
		State:   State{Slots: st.Slots, Bookings: bookings},
		Changed: ChangedBookings,
	}, bookings[idx], nil
}

func indexOfSlot(slots []model.AvailabilitySlot, id string) int {
	for i := range slots {
		if slots[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfBooking(bookings []model.Booking, id string) int {
	for i := range bookings {
		if bookings[i].ID == id {
			return i
		}
	}
	return -1
}

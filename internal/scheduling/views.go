package scheduling

import "github.com/Freeeeeet/drivingschool_bot/internal/model"

// Все представления вычисляются из текущих коллекций и возвращают копии.

// MyBookings записи текущего пользователя: для инструктора - где он trainer_id, для ученика - где он student_id
func (s *Store) MyBookings(actor *model.Actor) []model.Booking {
	if actor == nil {
		return []model.Booking{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterBookings(s.state.Bookings, func(b *model.Booking) bool {
		if actor.IsTrainer() {
			return b.TrainerID == actor.ID
		}
		return b.StudentID == actor.ID
	})
}

// FindBooking запись по идентификатору
func (s *Store) FindBooking(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.state.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// BookingsForStudent все записи ученика, независимо от того кто смотрит
func (s *Store) BookingsForStudent(studentID string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterBookings(s.state.Bookings, func(b *model.Booking) bool {
		return b.StudentID == studentID
	})
}

// BookingsForTrainer записи инструктора. Пустой trainerID - инструктор из контекста пользователя.
func (s *Store) BookingsForTrainer(actor *model.Actor, trainerID string) []model.Booking {
	if trainerID == "" {
		trainerID = trainerContext(actor)
	}
	if trainerID == "" {
		return []model.Booking{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterBookings(s.state.Bookings, func(b *model.Booking) bool {
		return b.TrainerID == trainerID
	})
}

// MyTrainerAvailability для инструктора - его слоты, для ученика - слоты закреплённого инструктора
func (s *Store) MyTrainerAvailability(actor *model.Actor) []model.AvailabilitySlot {
	return s.AvailabilityForTrainer(actor, "")
}

// AvailabilityForTrainer слоты указанного инструктора. Пустой trainerID - правило MyTrainerAvailability.
func (s *Store) AvailabilityForTrainer(actor *model.Actor, trainerID string) []model.AvailabilitySlot {
	if trainerID == "" {
		trainerID = trainerContext(actor)
	}

	result := []model.AvailabilitySlot{}
	if trainerID == "" {
		return result
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, slot := range s.state.Slots {
		if slot.TrainerID == trainerID {
			result = append(result, slot)
		}
	}
	return result
}

// trainerContext инструктор, в контексте которого работает пользователь
func trainerContext(actor *model.Actor) string {
	switch {
	case actor == nil:
		return ""
	case actor.IsTrainer():
		return actor.ID
	case actor.IsStudent():
		return actor.TrainerID
	default:
		return ""
	}
}

func filterBookings(bookings []model.Booking, keep func(b *model.Booking) bool) []model.Booking {
	result := []model.Booking{}
	for i := range bookings {
		b := &bookings[i]
		// rejected записи удаляются при переходе, но фильтруем и здесь
		if b.IsRejected() {
			continue
		}
		if keep(b) {
			result = append(result, *b)
		}
	}
	return result
}

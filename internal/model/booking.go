package model

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"  // Ожидает одобрения инструктора
	BookingStatusApproved BookingStatus = "approved" // Подтверждено
	BookingStatusRejected BookingStatus = "rejected" // Отклонено (запись сразу удаляется)
)

// CreatedBy кто инициировал запись
type CreatedBy string

const (
	CreatedByTrainer CreatedBy = "trainer"
	CreatedByStudent CreatedBy = "student"
)

type Booking struct {
	ID        string        `json:"id"`
	StudentID string        `json:"student_id"`
	TrainerID string        `json:"trainer_id"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	CreatedBy CreatedBy     `json:"created_by"`
}

// IsPending checks if booking waits for approval
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsApproved checks if booking is approved
func (b *Booking) IsApproved() bool {
	return b.Status == BookingStatusApproved
}

// IsRejected checks if booking is rejected
func (b *Booking) IsRejected() bool {
	return b.Status == BookingStatusRejected
}

// BelongsTo checks if actor is the booking's trainer (for trainers) or student (for students)
func (b *Booking) BelongsTo(a *Actor) bool {
	switch {
	case a.IsTrainer():
		return b.TrainerID == a.ID
	case a.IsStudent():
		return b.StudentID == a.ID
	default:
		return false
	}
}

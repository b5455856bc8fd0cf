package model

import (
	"errors"
	"time"
)

// ErrInvalidInterval окончание интервала не позже начала
var ErrInvalidInterval = errors.New("end must be after start")

// AvailabilitySlot окно, в которое инструктор готов проводить занятия
type AvailabilitySlot struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainer_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// ValidateInterval проверяет что end строго позже start.
// Вызывается на стороне вызывающего кода, планировщик интервалы не перепроверяет.
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidInterval
	}
	return nil
}

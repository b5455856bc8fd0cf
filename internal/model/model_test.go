package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateInterval(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateInterval(start, start.Add(time.Hour)))
	assert.ErrorIs(t, ValidateInterval(start, start), ErrInvalidInterval)
	assert.ErrorIs(t, ValidateInterval(start, start.Add(-time.Minute)), ErrInvalidInterval)
}

func TestUserActor(t *testing.T) {
	trainerID := int64(7)

	student := &User{ID: 12, Role: RoleStudent, TrainerID: &trainerID}
	actor := student.Actor()
	assert.Equal(t, "12", actor.ID)
	assert.Equal(t, "7", actor.TrainerID)
	assert.True(t, actor.IsStudent())
	assert.False(t, actor.IsTrainer())

	// Ученик без инструктора
	orphan := &User{ID: 13, Role: RoleStudent}
	assert.Empty(t, orphan.Actor().TrainerID)

	trainer := &User{ID: 7, Role: RoleTrainer}
	assert.True(t, trainer.Actor().IsTrainer())
}

func TestNilActor(t *testing.T) {
	var actor *Actor
	assert.False(t, actor.IsTrainer())
	assert.False(t, actor.IsStudent())
}

func TestBookingBelongsTo(t *testing.T) {
	booking := &Booking{ID: "b1", TrainerID: "1", StudentID: "2"}

	assert.True(t, booking.BelongsTo(&Actor{ID: "1", Role: RoleTrainer}))
	assert.True(t, booking.BelongsTo(&Actor{ID: "2", Role: RoleStudent, TrainerID: "1"}))

	assert.False(t, booking.BelongsTo(&Actor{ID: "5", Role: RoleTrainer}))
	assert.False(t, booking.BelongsTo(&Actor{ID: "3", Role: RoleStudent, TrainerID: "1"}))
	// Роль учитывается: инструктор с id ученика не владелец
	assert.False(t, booking.BelongsTo(&Actor{ID: "2", Role: RoleTrainer}))
	assert.False(t, booking.BelongsTo(&Actor{ID: "1", Role: Role("admin")}))
	assert.False(t, booking.BelongsTo(nil))
}

package scheduling

import (
	"testing"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	t1 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	trainer  = &model.Actor{ID: "T1", Role: model.RoleTrainer}
	student  = &model.Actor{ID: "S1", Role: model.RoleStudent, TrainerID: "T1"}
	orphan   = &model.Actor{ID: "S2", Role: model.RoleStudent}
	outsider = &model.Actor{ID: "A1", Role: model.Role("admin")}
	// неизвестная роль с привязкой к инструктору
	stranger = &model.Actor{ID: "A2", Role: model.Role("admin"), TrainerID: "T1"}
)

func TestRequestBookingInitialStatus(t *testing.T) {
	out, b, err := requestBooking(State{}, trainer, "b1", "S1", t0, t1, t0)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusApproved, b.Status)
	assert.Equal(t, model.CreatedByTrainer, b.CreatedBy)
	assert.Equal(t, "T1", b.TrainerID)
	require.Len(t, out.Events, 1)
	assert.Equal(t, EventLessonBooked, out.Events[0].Kind)

	out, b, err = requestBooking(State{}, student, "b2", "S1", t0, t1, t0)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, b.Status)
	assert.Equal(t, model.CreatedByStudent, b.CreatedBy)
	assert.Equal(t, "T1", b.TrainerID)
	require.Len(t, out.Events, 1)
	assert.Equal(t, EventBookingRequested, out.Events[0].Kind)
	assert.Equal(t, ChangedBookings, out.Changed)
}

func TestRequestBookingPrepends(t *testing.T) {
	st := State{}
	out, _, err := requestBooking(st, trainer, "b1", "S1", t0, t1, t0)
	require.NoError(t, err)
	out, _, err = requestBooking(out.State, trainer, "b2", "S1", t0, t1, t1)
	require.NoError(t, err)

	require.Len(t, out.State.Bookings, 2)
	assert.Equal(t, "b2", out.State.Bookings[0].ID)
	assert.Equal(t, "b1", out.State.Bookings[1].ID)
}

func TestRequestBookingWithoutTrainer(t *testing.T) {
	for _, actor := range []*model.Actor{orphan, outsider, stranger} {
		out, _, err := requestBooking(State{}, actor, "b1", actor.ID, t0, t1, t0)
		assert.ErrorIs(t, err, ErrTrainerNotFound)
		assert.Empty(t, out.State.Bookings)
		assert.Empty(t, out.Events)
	}

	_, _, err := requestBooking(State{}, nil, "b1", "S1", t0, t1, t0)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestApproveChangesOnlyStatus(t *testing.T) {
	out, pending, err := requestBooking(State{}, student, "b1", "S1", t0, t1, t0)
	require.NoError(t, err)

	out, approved, err := updateBookingStatus(out.State, trainer, "b1", model.BookingStatusApproved)
	require.NoError(t, err)
	require.NotNil(t, approved)

	expected := pending
	expected.Status = model.BookingStatusApproved
	assert.Equal(t, expected, *approved)
	assert.Equal(t, expected, out.State.Bookings[0])
	require.Len(t, out.Events, 1)
	assert.Equal(t, EventBookingApproved, out.Events[0].Kind)
}

func TestRejectDeletesFromAnyStatus(t *testing.T) {
	st := State{Bookings: []model.Booking{
		{ID: "p", StudentID: "S1", TrainerID: "T1", Status: model.BookingStatusPending},
		{ID: "a", StudentID: "S1", TrainerID: "T1", Status: model.BookingStatusApproved},
	}}

	for _, id := range []string{"p", "a"} {
		out, b, err := updateBookingStatus(st, trainer, id, model.BookingStatusRejected)
		require.NoError(t, err)
		assert.Nil(t, b)
		assert.Equal(t, -1, indexOfBooking(out.State.Bookings, id))
		assert.Len(t, out.State.Bookings, 1)
		require.Len(t, out.Events, 1)
		assert.Equal(t, EventBookingDeleted, out.Events[0].Kind)
		assert.Equal(t, id, out.Events[0].Booking.ID)
	}

	// Исходное состояние не изменилось
	assert.Len(t, st.Bookings, 2)
}

func TestUpdateBookingStatusInvalid(t *testing.T) {
	st := State{Bookings: []model.Booking{{ID: "b1", Status: model.BookingStatusPending}}}

	_, _, err := updateBookingStatus(st, trainer, "b1", model.BookingStatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, _, err = updateBookingStatus(st, trainer, "b1", model.BookingStatus("completed"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, _, err = updateBookingStatus(st, trainer, "missing", model.BookingStatusApproved)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBookingKeepsStatus(t *testing.T) {
	st := State{Bookings: []model.Booking{
		{ID: "b1", StudentID: "S1", TrainerID: "T1", Start: t0, End: t1, Status: model.BookingStatusPending},
	}}
	newStart, newEnd := t0.Add(24*time.Hour), t1.Add(24*time.Hour)

	out, b, err := updateBooking(st, trainer, "b1", "S3", newStart, newEnd)
	require.NoError(t, err)
	assert.Equal(t, "S3", b.StudentID)
	assert.Equal(t, newStart, b.Start)
	assert.Equal(t, newEnd, b.End)
	assert.Equal(t, model.BookingStatusPending, b.Status)
	assert.Empty(t, out.Events)

	out, _, err = updateBooking(st, student, "b1", "S3", newStart, newEnd)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, st, out.State)
}

func TestAvailabilityTransitionsRequireTrainer(t *testing.T) {
	st := State{Slots: []model.AvailabilitySlot{{ID: "s1", TrainerID: "T1", Start: t0, End: t1}}}

	for _, actor := range []*model.Actor{student, orphan, outsider} {
		out, _, err := addAvailability(st, actor, "s2", t0, t1)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, st, out.State)

		out, err = removeAvailability(st, actor, "s1")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, st, out.State)

		out, _, err = updateAvailability(st, actor, "s1", t0, t1.Add(time.Hour))
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, st, out.State)
	}

	_, _, err := addAvailability(st, nil, "s2", t0, t1)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAvailabilityAnyTrainerMayEdit(t *testing.T) {
	st := State{Slots: []model.AvailabilitySlot{{ID: "s1", TrainerID: "T1", Start: t0, End: t1}}}
	other := &model.Actor{ID: "T2", Role: model.RoleTrainer}

	out, slot, err := updateAvailability(st, other, "s1", t0, t1.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "T1", slot.TrainerID)
	assert.Equal(t, t1.Add(time.Hour), out.State.Slots[0].End)
	assert.Equal(t, t1, st.Slots[0].End)

	out, err = removeAvailability(st, other, "s1")
	require.NoError(t, err)
	assert.Empty(t, out.State.Slots)
	assert.Equal(t, ChangedSlots, out.Changed)
}

func TestRemoveAvailabilityKeepsBookings(t *testing.T) {
	st := State{
		Slots:    []model.AvailabilitySlot{{ID: "s1", TrainerID: "T1", Start: t0, End: t1}},
		Bookings: []model.Booking{{ID: "b1", TrainerID: "T1", Start: t0, End: t1, Status: model.BookingStatusApproved}},
	}

	out, err := removeAvailability(st, trainer, "s1")
	require.NoError(t, err)
	assert.Empty(t, out.State.Slots)
	assert.Len(t, out.State.Bookings, 1)

	_, err = removeAvailability(st, trainer, "missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

package keyboard

import (
	"testing"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingActions(t *testing.T) {
	pending := BookingActions(model.Booking{ID: "b1", Status: model.BookingStatusPending})
	require.Len(t, pending.InlineKeyboard, 1)
	require.Len(t, pending.InlineKeyboard[0], 2)
	assert.Equal(t, "approve_booking:b1", pending.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "reject_booking:b1", pending.InlineKeyboard[0][1].CallbackData)

	approved := BookingActions(model.Booking{ID: "b2", Status: model.BookingStatusApproved})
	require.Len(t, approved.InlineKeyboard, 1)
	require.Len(t, approved.InlineKeyboard[0], 1)
	assert.Equal(t, "reject_booking:b2", approved.InlineKeyboard[0][0].CallbackData)
}

func TestParseBookingAction(t *testing.T) {
	tests := []struct {
		data       string
		wantStatus model.BookingStatus
		wantID     string
		wantOK     bool
	}{
		{"approve_booking:b1", model.BookingStatusApproved, "b1", true},
		{"reject_booking:6f1c-uuid", model.BookingStatusRejected, "6f1c-uuid", true},
		{"approve_booking:", model.BookingStatusApproved, "", false},
		{"noop", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			status, id, ok := ParseBookingAction(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestBuilderSkipsEmptyRows(t *testing.T) {
	markup := NewBuilder().Row().Row(Button("a", "a")).Build()
	assert.Len(t, markup.InlineKeyboard, 1)
}

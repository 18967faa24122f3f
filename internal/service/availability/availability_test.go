package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	"github.com/m04kA/NC-GuesthouseService/pkg/ptr"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

func reservation(id, roomID int64, checkIn, checkOut types.DateString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:       id,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}
}

func TestCheck(t *testing.T) {
	// Комната 1 занята 2025-06-10 → 2025-06-13
	existing := []*domain.Reservation{
		reservation(1, 1, "2025-06-10", "2025-06-13", domain.StatusConfirmed),
	}

	tests := []struct {
		name      string
		roomID    int64
		checkIn   types.DateString
		checkOut  types.DateString
		excludeID *int64
		want      bool
	}{
		{name: "overlapping range", roomID: 1, checkIn: "2025-06-12", checkOut: "2025-06-15", want: false},
		{name: "touching ranges allow same-day turnover", roomID: 1, checkIn: "2025-06-13", checkOut: "2025-06-16", want: true},
		{name: "checkout on existing checkin", roomID: 1, checkIn: "2025-06-07", checkOut: "2025-06-10", want: true},
		{name: "strictly containing range", roomID: 1, checkIn: "2025-06-09", checkOut: "2025-06-14", want: false},
		{name: "other room is free", roomID: 2, checkIn: "2025-06-12", checkOut: "2025-06-15", want: true},
		{name: "own prior version excluded", roomID: 1, checkIn: "2025-06-11", checkOut: "2025-06-14", excludeID: ptr.Ptr(int64(1)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.roomID, tt.checkIn, tt.checkOut, tt.excludeID, existing))
		})
	}
}

func TestCheck_CancelledReservationsIgnored(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(1, 1, "2025-06-10", "2025-06-13", domain.StatusCancelled),
	}

	assert.True(t, Check(1, "2025-06-10", "2025-06-13", nil, existing))
}

func TestCheck_PendingReservationsBlock(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(1, 1, "2025-06-10", "2025-06-13", domain.StatusPending),
	}

	assert.False(t, Check(1, "2025-06-12", "2025-06-15", nil, existing))
}

func TestCheck_EmptyRoomAlwaysAvailable(t *testing.T) {
	assert.True(t, Check(1, "2025-06-01", "2025-12-30", nil, nil))
}

package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	reservationRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/room"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRooms() *roomRepo.Repository {
	return roomRepo.NewRepository([]*domain.Room{
		{ID: 1, Name: "Chambre Commit", Capacity: 3},
		{ID: 2, Name: "Chambre Push", Capacity: 3},
	})
}

func findDay(t *testing.T, resp *Response, date types.DateString) *Day {
	t.Helper()
	for i := range resp.Days {
		if resp.Days[i].Date == date {
			return &resp.Days[i]
		}
	}
	t.Fatalf("day %s not in grid", date)
	return nil
}

func TestUseCase_Execute_GridBounds(t *testing.T) {
	uc := NewUseCase(reservationRepo.NewRepository(), testRooms(), nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)}

	// Июнь 2025: первое число - воскресенье, тридцатое - понедельник
	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-06"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06", resp.Month)
	require.Len(t, resp.Days, 42)
	assert.Equal(t, types.DateString("2025-05-26"), resp.Days[0].Date)
	assert.Equal(t, types.DateString("2025-07-06"), resp.Days[41].Date)

	// Первый день каждой недели - понедельник, он же закрыт
	for i := 0; i < len(resp.Days); i += 7 {
		weekday, wdErr := resp.Days[i].Date.Weekday()
		require.NoError(t, wdErr)
		assert.Equal(t, time.Monday, weekday, "day %d", i)
		assert.True(t, resp.Days[i].IsClosed, "day %d", i)
	}

	may31 := findDay(t, resp, "2025-05-31")
	assert.False(t, may31.InCurrentMonth)

	june10 := findDay(t, resp, "2025-06-10")
	assert.True(t, june10.InCurrentMonth)
	assert.True(t, june10.IsToday)

	june11 := findDay(t, resp, "2025-06-11")
	assert.False(t, june11.IsToday)
	assert.False(t, june11.IsClosed)
}

func TestUseCase_Execute_ReservationsPerDay(t *testing.T) {
	repo := reservationRepo.NewRepository()

	_, err := repo.Create(context.Background(), &domain.Reservation{
		GuestName: "Marie Dubois", Email: "marie@email.com", RoomID: 1,
		CheckIn: "2025-06-10", CheckOut: "2025-06-13",
		Adults: 2, Status: domain.StatusConfirmed,
	})
	require.NoError(t, err)

	// Отмененное бронирование в сетке не отображается
	_, err = repo.Create(context.Background(), &domain.Reservation{
		GuestName: "Pierre Martin", Email: "pierre@email.com", RoomID: 2,
		CheckIn: "2025-06-10", CheckOut: "2025-06-13",
		Adults: 1, Status: domain.StatusCancelled,
	})
	require.NoError(t, err)

	uc := NewUseCase(repo, testRooms(), nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-06"})
	require.NoError(t, err)

	// День заезда занят, день выезда свободен
	require.Len(t, findDay(t, resp, "2025-06-10").Reservations, 1)
	require.Len(t, findDay(t, resp, "2025-06-12").Reservations, 1)
	assert.Empty(t, findDay(t, resp, "2025-06-13").Reservations)
	assert.Empty(t, findDay(t, resp, "2025-06-09").Reservations)

	day := findDay(t, resp, "2025-06-11")
	require.Len(t, day.Reservations, 1)
	assert.Equal(t, "Marie Dubois", day.Reservations[0].GuestName)
	assert.Equal(t, "Chambre Commit", day.Reservations[0].RoomName)
	assert.Equal(t, "confirmed", day.Reservations[0].Status)
}

func TestUseCase_Execute_DefaultMonth(t *testing.T) {
	uc := NewUseCase(reservationRepo.NewRepository(), testRooms(), nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, "2025-02", resp.Month)
}

func TestUseCase_Execute_InvalidMonth(t *testing.T) {
	uc := NewUseCase(reservationRepo.NewRepository(), testRooms(), nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}

	for _, month := range []string{"2025-13", "juin", "2025-6", "2025/06"} {
		_, err := uc.Execute(context.Background(), &Request{Month: month})
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q", month)
	}
}

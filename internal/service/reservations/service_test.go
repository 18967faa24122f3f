package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	reservationRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/room"
	"github.com/m04kA/NC-GuesthouseService/pkg/ptr"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *reservationRepo.Repository) {
	t.Helper()

	repo := reservationRepo.NewRepository()
	rooms := roomRepo.NewRepository([]*domain.Room{
		{ID: 1, Name: "Chambre Commit", Capacity: 3},
		{ID: 2, Name: "Chambre Push", Capacity: 3},
	})
	return NewService(repo, rooms, nopLogger{}), repo
}

func seed(t *testing.T, repo *reservationRepo.Repository, status domain.ReservationStatus, checkIn, checkOut string) *domain.Reservation {
	t.Helper()

	created, err := repo.Create(context.Background(), &domain.Reservation{
		GuestName: "Marie Dubois",
		Email:     "marie@email.com",
		RoomID:    1,
		CheckIn:   types.DateString(checkIn),
		CheckOut:  types.DateString(checkOut),
		Adults:    2,
		Status:    status,
	})
	require.NoError(t, err)
	return created
}

func TestService_List_StatusFilter(t *testing.T) {
	svc, repo := newTestService(t)

	seed(t, repo, domain.StatusConfirmed, "2025-06-10", "2025-06-13")
	seed(t, repo, domain.StatusPending, "2025-06-14", "2025-06-15")
	seed(t, repo, domain.StatusCancelled, "2025-06-17", "2025-06-19")

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	confirmed, err := svc.List(context.Background(), ptr.Ptr("confirmed"))
	require.NoError(t, err)
	require.Equal(t, 1, confirmed.Total)
	assert.Equal(t, "confirmed", confirmed.Reservations[0].Status)

	cancelled, err := svc.List(context.Background(), ptr.Ptr("cancelled"))
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled.Total)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.List(context.Background(), ptr.Ptr("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_GetByID(t *testing.T) {
	svc, repo := newTestService(t)
	created := seed(t, repo, domain.StatusConfirmed, "2025-06-10", "2025-06-13")

	found, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 3, found.Nights)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Delete_Idempotent(t *testing.T) {
	svc, repo := newTestService(t)
	created := seed(t, repo, domain.StatusConfirmed, "2025-06-10", "2025-06-13")

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	// Повторное удаление того же ID не является ошибкой
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err := svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_ListRooms(t *testing.T) {
	svc, _ := newTestService(t)

	rooms, err := svc.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Chambre Commit", rooms[0].Name)
}

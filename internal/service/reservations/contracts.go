package reservations

import (
	"context"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package availability

import (
	"context"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	List(ctx context.Context) ([]*domain.Reservation, error)
}

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	List(ctx context.Context) ([]*domain.Reservation, error)
}

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package list_reservations

import (
	"context"

	"github.com/m04kA/NC-GuesthouseService/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, status *string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

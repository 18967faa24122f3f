package get_availability

import (
	"context"

	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

type AvailabilityService interface {
	IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut types.DateString, excludeID *int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_reservation

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("update_reservation: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)

// ValidationError содержит список нарушений правил дома
type ValidationError struct {
	Violations []string
}

// Error возвращает все нарушения одной строкой
func (e *ValidationError) Error() string {
	return "update_reservation: validation failed: " + strings.Join(e.Violations, "; ")
}

package create_reservation

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ValidationError содержит список нарушений правил дома
// Это не исключительная ситуация, а штатный результат проверки черновика:
// вызывающая сторона обязана показать сообщения пользователю и не выполнять запись.
type ValidationError struct {
	Violations []string
}

// Error возвращает все нарушения одной строкой
func (e *ValidationError) Error() string {
	return "create_reservation: validation failed: " + strings.Join(e.Violations, "; ")
}

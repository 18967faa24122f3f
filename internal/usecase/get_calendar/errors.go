package get_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается, когда месяц не соответствует формату YYYY-MM
	ErrInvalidMonth = errors.New("get_calendar: invalid month format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)

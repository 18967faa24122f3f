package update_reservation

import (
	"time"

	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// Request модель запроса на обновление бронирования
// Обновление - полная замена по ID: каждое поле берется из запроса,
// кроме CreatedAt, который сохраняется от прежней версии.
type Request struct {
	ID         int64
	GuestName  string
	Email      string
	Phone      string
	RoomID     int64
	CheckIn    types.DateString
	CheckOut   types.DateString
	Adults     int
	Children   int
	CribOption bool
	Status     string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID         int64
	GuestName  string
	Email      string
	Phone      string
	RoomID     int64
	CheckIn    types.DateString
	CheckOut   types.DateString
	Adults     int
	Children   int
	CribOption bool
	Status     string

	// TotalPrice пересчитывается калькулятором при каждом обновлении
	TotalPrice int64

	// CreatedAt прежней версии, не регенерируется
	CreatedAt time.Time
}

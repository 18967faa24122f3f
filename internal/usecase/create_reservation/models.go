package create_reservation

import (
	"time"

	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	GuestName  string           // Имя гостя
	Email      string           // Email гостя
	Phone      string           // Телефон (опционально)
	RoomID     int64            // ID комнаты
	CheckIn    types.DateString // Дата заезда
	CheckOut   types.DateString // Дата выезда
	Adults     int              // Число взрослых
	Children   int              // Число детей
	CribOption bool             // Детская кроватка
	Status     string           // Статус; пустая строка = pending
}

// Response модель ответа с созданным бронированием
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

	// TotalPrice итоговая цена, вычисленная калькулятором при создании
	TotalPrice int64

	CreatedAt time.Time
}

package get_calendar

import (
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// Request месяц календаря в формате YYYY-MM; пустое значение - текущий месяц
type Request struct {
	Month string
}

// DayReservation бронирование, попадающее на день сетки
type DayReservation struct {
	ReservationID int64  `json:"reservationId"`
	GuestName     string `json:"guestName"`
	RoomID        int64  `json:"roomId"`
	RoomName      string `json:"roomName"`
	Status        string `json:"status"`
}

// Day один день календарной сетки
type Day struct {
	Date types.DateString `json:"date"`

	// InCurrentMonth false для дней соседних месяцев, дополняющих недели
	InCurrentMonth bool `json:"inCurrentMonth"`
	IsToday        bool `json:"isToday"`

	// IsClosed понедельник: гостевой дом не принимает проживания
	IsClosed bool `json:"isClosed"`

	Reservations []DayReservation `json:"reservations"`
}

// Response календарная сетка месяца: полные недели с понедельника по воскресенье
type Response struct {
	Month string `json:"month"`
	Days  []Day  `json:"days"`
}

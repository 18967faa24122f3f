package get_dashboard

import (
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// ArrivalInfo краткая сводка по предстоящему заезду
type ArrivalInfo struct {
	ReservationID int64            `json:"reservationId"`
	GuestName     string           `json:"guestName"`
	RoomID        int64            `json:"roomId"`
	RoomName      string           `json:"roomName"`
	CheckIn       types.DateString `json:"checkIn"`
	CheckOut      types.DateString `json:"checkOut"`
	TotalGuests   int              `json:"totalGuests"`
}

// StayInfo текущее проживание: гость уже заехал и еще не выехал
type StayInfo struct {
	ReservationID int64            `json:"reservationId"`
	GuestName     string           `json:"guestName"`
	RoomID        int64            `json:"roomId"`
	RoomName      string           `json:"roomName"`
	CheckOut      types.DateString `json:"checkOut"`
}

// Response сводка по состоянию гостевого дома на референсную дату
type Response struct {
	TotalReservations     int `json:"totalReservations"`
	ConfirmedReservations int `json:"confirmedReservations"`
	PendingReservations   int `json:"pendingReservations"`

	// MonthlyRevenue сумма totalPrice подтвержденных бронирований,
	// заезд которых приходится на текущий месяц, в XPF
	MonthlyRevenue int64 `json:"monthlyRevenue"`

	// UpcomingArrivals подтвержденные заезды в ближайшие 7 дней,
	// отсортированные по дате заезда
	UpcomingArrivals []ArrivalInfo `json:"upcomingArrivals"`

	// CurrentStays подтвержденные бронирования, диапазон которых
	// накрывает референсную дату
	CurrentStays []StayInfo `json:"currentStays"`

	OccupiedRooms int `json:"occupiedRooms"`
	TotalRooms    int `json:"totalRooms"`

	// OccupancyRate = round(occupied / rooms * 100), в процентах
	OccupancyRate int `json:"occupancyRate"`
}

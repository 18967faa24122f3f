package domain

import (
	"regexp"
	"time"

	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a guest's stay in one room for [CheckIn, CheckOut)
type Reservation struct {
	ID        int64
	GuestName string
	Email     string
	Phone     string
	RoomID    int64
	CheckIn   types.DateString
	CheckOut  types.DateString
	Adults    int
	Children  int

	// CribOption дополнительная опция "детская кроватка" с фиксированной доплатой
	CribOption bool

	Status ReservationStatus

	// TotalPrice итоговая цена в XPF, вычисляется при создании/обновлении и хранится
	TotalPrice int64

	// CreatedAt проставляется хранилищем один раз при создании и далее не меняется
	CreatedAt time.Time
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsActive returns true if the reservation still occupies its room
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// Nights returns the number of nights in the stay
func (r *Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// CoversDay returns true if the day falls within [CheckIn, CheckOut)
func (r *Reservation) CoversDay(day types.DateString) bool {
	return RangeContainsDay(r.CheckIn, r.CheckOut, day)
}

// TotalGuests returns the total number of occupants
func (r *Reservation) TotalGuests() int {
	return r.Adults + r.Children
}

// ToReservationStatus конвертирует строку в ReservationStatus
func ToReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// emailPattern базовая проверка формы local@domain.tld
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail проверяет, что строка похожа на email адрес
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

package update_reservation

import (
	"time"

	updateReservation "github.com/m04kA/NC-GuesthouseService/internal/usecase/update_reservation"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// UpdateReservationRequest HTTP request model
// Полная замена бронирования: все поля обязательны, кроме phone.
type UpdateReservationRequest struct {
	GuestName  string `json:"guestName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	RoomID     int64  `json:"roomId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	CribOption bool   `json:"cribOption"`
	Status     string `json:"status"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64  `json:"id"`
	GuestName  string `json:"guestName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	RoomID     int64  `json:"roomId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	CribOption bool   `json:"cribOption"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"totalPrice"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// ID берется из пути, не из тела.
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) *updateReservation.Request {
	return &updateReservation.Request{
		ID:         id,
		GuestName:  r.GuestName,
		Email:      r.Email,
		Phone:      r.Phone,
		RoomID:     r.RoomID,
		CheckIn:    types.DateString(r.CheckIn),
		CheckOut:   types.DateString(r.CheckOut),
		Adults:     r.Adults,
		Children:   r.Children,
		CribOption: r.CribOption,
		Status:     r.Status,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		GuestName:  resp.GuestName,
		Email:      resp.Email,
		Phone:      resp.Phone,
		RoomID:     resp.RoomID,
		CheckIn:    resp.CheckIn.String(),
		CheckOut:   resp.CheckOut.String(),
		Adults:     resp.Adults,
		Children:   resp.Children,
		CribOption: resp.CribOption,
		Status:     resp.Status,
		TotalPrice: resp.TotalPrice,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}

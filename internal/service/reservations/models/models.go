package models

import (
	"time"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64  `json:"id"`
	GuestName  string `json:"guestName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Room       int64  `json:"room"`
	CheckIn    string `json:"checkIn"`  // "2025-06-10"
	CheckOut   string `json:"checkOut"` // "2025-06-13"
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	CribOption bool   `json:"cribOption"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"totalPrice"`
	Nights     int    `json:"nights"`
	CreatedAt  string `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// FromDomainReservation конвертирует domain.Reservation в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		GuestName:  r.GuestName,
		Email:      r.Email,
		Phone:      r.Phone,
		Room:       r.RoomID,
		CheckIn:    r.CheckIn.String(),
		CheckOut:   r.CheckOut.String(),
		Adults:     r.Adults,
		Children:   r.Children,
		CribOption: r.CribOption,
		Status:     string(r.Status),
		TotalPrice: r.TotalPrice,
		Nights:     r.Nights(),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain.Reservation в response
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}

// FromDomainRoom конвертирует domain.Room в response
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}

// FromDomainRoomList конвертирует список комнат в response
func FromDomainRoomList(list []*domain.Room) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainRoom(r))
	}
	return out
}

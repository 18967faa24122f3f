package update_reservation

import (
	"fmt"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// validateRequest валидирует форму входных данных запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !domain.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: email must look like local@domain.tld", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}
	if err := req.CheckIn.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkIn format: %v", ErrInvalidInput, err)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}
	if err := req.CheckOut.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkOut format: %v", ErrInvalidInput, err)
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}

	if req.Children < domain.MinChildren {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	if req.Status == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	if _, ok := domain.ToReservationStatus(req.Status); !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return nil
}

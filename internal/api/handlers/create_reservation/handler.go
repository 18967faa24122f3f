package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/NC-GuesthouseService/internal/api/handlers"
	createReservation "github.com/m04kA/NC-GuesthouseService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidInput       = "données de réservation invalides"
	msgRoomNotFound       = "chambre introuvable"
	msgRulesViolated      = "la réservation ne respecte pas les règles du gîte"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *createReservation.ValidationError

		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /reservations - Rules violated: guest=%s, room=%d, violations=%d",
				req.GuestName, req.RoomID, len(vErr.Violations))
			handlers.RespondViolations(w, msgRulesViolated, vErr.Violations)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: guest=%s, room=%d, error=%v",
				req.GuestName, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, room_id=%d, total_price=%d",
		result.ID, result.RoomID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

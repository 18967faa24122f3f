package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NC-GuesthouseService/internal/api/handlers"
	updateReservation "github.com/m04kA/NC-GuesthouseService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "identifiant de réservation invalide"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidInput         = "données de réservation invalides"
	msgNotFound             = "réservation introuvable"
	msgRoomNotFound         = "chambre introuvable"
	msgRulesViolated        = "la réservation ne respecte pas les règles du gîte"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		var vErr *updateReservation.ValidationError

		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("PUT /reservations/{id} - Rules violated: reservation_id=%d, violations=%d",
				reservationID, len(vErr.Violations))
			handlers.RespondViolations(w, msgRulesViolated, vErr.Violations)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrRoomNotFound):
			h.logger.Warn("PUT /reservations/{id} - Room not found: reservation_id=%d, room_id=%d",
				reservationID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d, total_price=%d",
		result.ID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

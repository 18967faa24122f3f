package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/NC-GuesthouseService/internal/api/handlers"
	"github.com/m04kA/NC-GuesthouseService/internal/service/reservations"
	"github.com/m04kA/NC-GuesthouseService/pkg/ptr"
)

const (
	msgInvalidStatus = "statut invalide, attendu: pending, confirmed ou cancelled"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = ptr.Ptr(raw)
	}

	list, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /reservations - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservations", list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}

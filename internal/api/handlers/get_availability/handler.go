package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NC-GuesthouseService/internal/api/handlers"
	"github.com/m04kA/NC-GuesthouseService/internal/service/availability"
	"github.com/m04kA/NC-GuesthouseService/pkg/ptr"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

const (
	msgInvalidRoomID    = "identifiant de chambre invalide"
	msgInvalidDates     = "dates invalides, format attendu: YYYY-MM-DD"
	msgInvalidExcludeID = "identifiant de réservation à exclure invalide"
	msgRoomNotFound     = "chambre introuvable"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    int64  `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Available bool   `json:"available"`
}

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?checkIn=...&checkOut=...&excludeReservationId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	checkIn := types.DateString(query.Get("checkIn"))
	checkOut := types.DateString(query.Get("checkOut"))
	if checkIn.Validate() != nil || checkOut.Validate() != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid dates: checkIn=%q, checkOut=%q", checkIn, checkOut)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	var excludeID *int64
	if raw := query.Get("excludeReservationId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/availability - Invalid exclude ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = ptr.Ptr(parsed)
	}

	available, err := h.service.IsRoomAvailable(r.Context(), roomID, checkIn, checkOut, excludeID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Checked: room_id=%d, checkIn=%s, checkOut=%s, available=%t",
		roomID, checkIn, checkOut, available)
	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   checkIn.String(),
		CheckOut:  checkOut.String(),
		Available: available,
	})
}

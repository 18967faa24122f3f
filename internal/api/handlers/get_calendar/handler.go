package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/NC-GuesthouseService/internal/api/handlers"
	getCalendar "github.com/m04kA/NC-GuesthouseService/internal/usecase/get_calendar"
)

const (
	msgInvalidMonth = "mois invalide, format attendu: YYYY-MM"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?month=2025-06
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getCalendar.Request{
		Month: r.URL.Query().Get("month"),
	}

	grid, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - Invalid month: %q", req.Month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: month=%q, error=%v", req.Month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, grid)
}

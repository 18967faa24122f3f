package get_quote

import (
	"net/http"
	"strconv"

	"github.com/m04kA/NC-GuesthouseService/internal/api/handlers"
	"github.com/m04kA/NC-GuesthouseService/internal/service/pricing"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

const (
	msgInvalidDates      = "dates invalides, format attendu: YYYY-MM-DD"
	msgInvalidCribOption = "option lit bébé invalide, attendu: true ou false"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/quote?checkIn=2025-06-10&checkOut=2025-06-13&cribOption=true
// Чистый расчет без обращения к хранилищу: даты в прошлом допустимы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	checkIn := types.DateString(query.Get("checkIn"))
	checkOut := types.DateString(query.Get("checkOut"))
	if checkIn.Validate() != nil || checkOut.Validate() != nil {
		h.logger.Warn("GET /quote - Invalid dates: checkIn=%q, checkOut=%q", checkIn, checkOut)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	cribOption := false
	if raw := query.Get("cribOption"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /quote - Invalid cribOption: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCribOption)
			return
		}
		cribOption = parsed
	}

	quote := pricing.BuildQuote(checkIn, checkOut, cribOption)

	h.logger.Info("GET /quote - Quote built: checkIn=%s, checkOut=%s, crib=%t, total=%d",
		checkIn, checkOut, cribOption, quote.Total)
	handlers.RespondJSON(w, http.StatusOK, FromQuote(checkIn.String(), checkOut.String(), quote))
}

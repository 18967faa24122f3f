package get_quote

import (
	"github.com/m04kA/NC-GuesthouseService/internal/service/pricing"
)

// QuoteResponse HTTP response model с детализацией стоимости
type QuoteResponse struct {
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
	WeekdayNights int    `json:"weekdayNights"`
	WeekendNights int    `json:"weekendNights"`
	BasePrice     int64  `json:"basePrice"`
	CribSurcharge int64  `json:"cribSurcharge"`
	Total         int64  `json:"total"`
}

// FromQuote конвертирует расчет калькулятора в HTTP response
func FromQuote(checkIn, checkOut string, q pricing.Quote) *QuoteResponse {
	return &QuoteResponse{
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        q.Nights,
		WeekdayNights: q.WeekdayNights,
		WeekendNights: q.WeekendNights,
		BasePrice:     q.BasePrice,
		CribSurcharge: q.CribSurcharge,
		Total:         q.Total,
	}
}

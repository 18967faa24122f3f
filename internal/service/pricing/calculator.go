package pricing

import (
	"time"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// CalculatePrice считает полную стоимость проживания [checkIn, checkOut) в XPF
// Каждая ночь стоит WeekendNightRate, если ее дата приходится на субботу или
// воскресенье, иначе WeekdayNightRate; cribOption добавляет фиксированную доплату.
//
// Пустой диапазон (равные даты) дает 0 плюс доплату за кроватку - вырожденный
// случай, который валидатор отклоняет до записи в хранилище; сам калькулятор
// на нем не падает.
func CalculatePrice(checkIn, checkOut types.DateString, cribOption bool) int64 {
	return BuildQuote(checkIn, checkOut, cribOption).Total
}

// BuildQuote считает стоимость с детализацией по ночам
func BuildQuote(checkIn, checkOut types.DateString, cribOption bool) Quote {
	var quote Quote

	for _, day := range domain.DaysInRange(checkIn, checkOut) {
		weekday, err := day.Weekday()
		if err != nil {
			continue
		}

		if isWeekend(weekday) {
			quote.WeekendNights++
			quote.BasePrice += domain.WeekendNightRate
		} else {
			quote.WeekdayNights++
			quote.BasePrice += domain.WeekdayNightRate
		}
		quote.Nights++
	}

	if cribOption {
		quote.CribSurcharge = domain.CribSurcharge
	}

	quote.Total = quote.BasePrice + quote.CribSurcharge
	return quote
}

// isWeekend суббота или воскресенье
func isWeekend(weekday time.Weekday) bool {
	return weekday == time.Saturday || weekday == time.Sunday
}

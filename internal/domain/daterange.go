package domain

import (
	"time"

	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// NightsBetween возвращает количество ночей в полуинтервале [checkIn, checkOut)
// Для инвертированного или некорректного диапазона возвращает 0,
// порядок дат должен быть проверен вызывающей стороной.
func NightsBetween(checkIn, checkOut types.DateString) int {
	nights, err := checkIn.DaysUntil(checkOut)
	if err != nil || nights < 0 {
		return 0
	}
	return nights
}

// RangesOverlap проверяет пересечение двух полуинтервалов дат
// Интервалы пересекаются, только если aStart строго раньше bEnd И aEnd строго позже bStart.
// Граничные случаи (выезд одного = заезд другого) пересечением НЕ считаются -
// это разрешает выезд и заселение в один и тот же день.
//
// Примеры:
// - [06-10, 06-13) и [06-12, 06-15) → ЕСТЬ пересечение (ночь 06-12)
// - [06-10, 06-13) и [06-13, 06-16) → НЕТ пересечения (граничат)
func RangesOverlap(aStart, aEnd, bStart, bEnd types.DateString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// RangeContainsDay проверяет, что день попадает в полуинтервал [checkIn, checkOut)
func RangeContainsDay(checkIn, checkOut, day types.DateString) bool {
	return !day.IsBefore(checkIn) && day.IsBefore(checkOut)
}

// RangeContainsWeekday проверяет, содержит ли полуинтервал [checkIn, checkOut)
// хотя бы один день с указанным днем недели (день выезда исключен)
func RangeContainsWeekday(checkIn, checkOut types.DateString, weekday time.Weekday) bool {
	start, err := checkIn.Time()
	if err != nil {
		return false
	}
	end, err := checkOut.Time()
	if err != nil {
		return false
	}

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == weekday {
			return true
		}
	}
	return false
}

// DaysInRange перечисляет все дни полуинтервала [checkIn, checkOut)
func DaysInRange(checkIn, checkOut types.DateString) []types.DateString {
	start, err := checkIn.Time()
	if err != nil {
		return nil
	}
	end, err := checkOut.Time()
	if err != nil {
		return nil
	}

	days := make([]types.DateString, 0)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, types.NewDateString(d))
	}
	return days
}

package domain

import "time"

// Тарифы, XPF за ночь (целые числа, без дробной части)
const (
	WeekdayNightRate int64 = 5000
	WeekendNightRate int64 = 7000

	// CribSurcharge фиксированная доплата за детскую кроватку на все проживание
	CribSurcharge int64 = 1000
)

// Ограничения заселения
const (
	MinAdults        = 1
	MaxAdults        = 2
	MinChildren      = 0
	MaxChildren      = 1
	MaxGuestsPerRoom = 3

	DefaultRoomCapacity = 3
)

// ClosedWeekday день недели, в который гостевой дом не работает
// Ни одно проживание не может включать этот день.
const ClosedWeekday = time.Monday

// UpcomingArrivalsWindowDays окно "ближайших заездов" на дашборде
const UpcomingArrivalsWindowDays = 7

// Форматы дат
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

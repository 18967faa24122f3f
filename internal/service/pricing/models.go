package pricing

// Quote детализация стоимости проживания
// Используется формой бронирования для живого пересчета цены.
type Quote struct {
	Nights        int
	WeekdayNights int
	WeekendNights int

	// BasePrice сумма ночных тарифов без доплат, XPF
	BasePrice int64

	// CribSurcharge доплата за детскую кроватку (0, если опция не выбрана)
	CribSurcharge int64

	// Total итоговая стоимость, XPF
	Total int64
}

package types

import (
	"errors"
	"time"
)

// dateLayout формат календарной даты (YYYY-MM-DD)
const dateLayout = "2006-01-02"

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString календарная дата в формате "YYYY-MM-DD"
// Без времени суток и без часового пояса - все сравнения ведутся по календарным дням.
// Лексикографическое сравнение ISO-дат совпадает с хронологическим,
// поэтому IsBefore/IsAfter работают без парсинга.
type DateString string

// NewDateString создает DateString из time.Time (время суток отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", ErrInvalidDateString
	}
	return DateString(s), nil
}

// Validate проверяет, что значение является корректной датой формата YYYY-MM-DD
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return ErrInvalidDateString
	}
	return nil
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Time конвертирует дату в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateString
	}
	return t, nil
}

// IsBefore возвращает true, если дата строго раньше other
func (d DateString) IsBefore(other DateString) bool {
	return d < other
}

// IsAfter возвращает true, если дата строго позже other
func (d DateString) IsAfter(other DateString) bool {
	return d > other
}

// AddDays возвращает дату, смещенную на days дней (days может быть отрицательным)
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// Weekday возвращает день недели даты
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// DaysUntil возвращает количество целых дней от d до other
// Отрицательное значение означает, что other раньше d.
func (d DateString) DaysUntil(other DateString) (int, error) {
	from, err := d.Time()
	if err != nil {
		return 0, err
	}
	to, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

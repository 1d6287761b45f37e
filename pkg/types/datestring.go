package types

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat формат календарной даты, используемый на всех границах сервиса
const DateFormat = "2006-01-02" // YYYY-MM-DD

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString represents a calendar date carried across API and storage
// boundaries as a YYYY-MM-DD string. Because the format is fixed-width
// ISO, lexicographic comparison matches chronological comparison.
type DateString string

// NewDateString создает DateString из time.Time (время суток отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что строка является корректной датой формата YYYY-MM-DD
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Time возвращает дату как time.Time (UTC, полночь).
// Для невалидной строки возвращается нулевое время - валидация выполняется
// на границах через Validate.
func (d DateString) Time() time.Time {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Weekday возвращает день недели даты
func (d DateString) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before returns true if d is strictly earlier than other.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After returns true if d is strictly later than other.
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

func (d DateString) String() string {
	return string(d)
}

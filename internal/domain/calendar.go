package domain

import (
	"time"

	"github.com/premiermedia/AdBookingService/pkg/types"
)

// WeekStart возвращает понедельник ISO-недели, содержащей дату
func WeekStart(d types.DateString) types.DateString {
	t := d.Time()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return types.NewDateString(t.AddDate(0, 0, -offset))
}

// SameISOWeek проверяет, что обе даты лежат в одной ISO-неделе (с понедельника)
func SameISOWeek(a, b types.DateString) bool {
	return WeekStart(a) == WeekStart(b)
}

// MonthKey возвращает ключ календарного месяца даты в формате YYYY-MM
func MonthKey(d types.DateString) string {
	return d.Time().Format("2006-01")
}

// SameMonth проверяет, что обе даты лежат в одном календарном месяце
func SameMonth(a, b types.DateString) bool {
	return MonthKey(a) == MonthKey(b)
}

// DaysInMonth возвращает число дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds возвращает первую и последнюю дату месяца
func MonthBounds(year int, month time.Month) (types.DateString, types.DateString) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return types.NewDateString(first), types.NewDateString(last)
}

// DateOfDay возвращает дату d-го числа месяца
func DateOfDay(year int, month time.Month, day int) types.DateString {
	return types.NewDateString(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateRangeBounds возвращает min/max списка дат.
// Используется для выведения flight-диапазона email-бронирований.
func DateRangeBounds(dates []types.DateString) (types.DateString, types.DateString) {
	if len(dates) == 0 {
		return "", ""
	}
	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max
}

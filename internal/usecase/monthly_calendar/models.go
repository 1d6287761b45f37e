package monthly_calendar

import (
	"fmt"
	"time"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// Request модель запроса месячного календаря доступности
type Request struct {
	Type     domain.ChannelType
	Year     int
	Month    time.Month
	TargetID *string // опционально: конкретный канал вместо агрегата по типу
}

// Response месячный календарь: день месяца -> {used, available, capacity}
type Response struct {
	Type     domain.ChannelType
	Year     int
	Month    time.Month
	TargetID *string
	Days     domain.MonthlyCalendar
}

// cacheKey ключ календаря в кеше
func (r *Request) cacheKey() string {
	target := "all"
	if r.TargetID != nil {
		target = *r.TargetID
	}
	return fmt.Sprintf("calendar:%s:%s:%04d-%02d", r.Type, target, r.Year, int(r.Month))
}

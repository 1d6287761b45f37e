package cache

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// NoopCalendarCache заглушка кеша для конфигураций без Redis.
// Каждый запрос календаря пересчитывается по хранилищу.
type NoopCalendarCache struct{}

// NewNoopCalendarCache создает заглушку кеша
func NewNoopCalendarCache() *NoopCalendarCache {
	return &NoopCalendarCache{}
}

func (*NoopCalendarCache) GetCalendar(context.Context, string) (domain.MonthlyCalendar, bool) {
	return nil, false
}

func (*NoopCalendarCache) SetCalendar(context.Context, string, domain.MonthlyCalendar) {}

func (*NoopCalendarCache) InvalidateCalendars(context.Context) {}

package monthly_calendar

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// ChannelRepository интерфейс репозитория каталога инвентаря
type ChannelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Channel, error)
	List(ctx context.Context, typeFilter *domain.ChannelType) ([]*domain.Channel, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CalendarCache кеш готовых месячных календарей. Ошибки кеша не влияют
// на результат - промах просто ведет к пересчету.
type CalendarCache interface {
	GetCalendar(ctx context.Context, key string) (domain.MonthlyCalendar, bool)
	SetCalendar(ctx context.Context, key string, calendar domain.MonthlyCalendar)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

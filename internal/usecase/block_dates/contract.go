package block_dates

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// CalendarInvalidator инвалидирует кеш календарей после записи
type CalendarInvalidator interface {
	InvalidateCalendars(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

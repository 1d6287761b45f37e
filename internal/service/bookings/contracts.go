package bookings

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
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

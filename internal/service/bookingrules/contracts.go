package bookingrules

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований.
// Валидатору нужно только чтение.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

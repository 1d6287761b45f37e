package check_availability

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

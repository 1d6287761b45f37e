package update_booking

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/service/bookingrules"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}

// RulesValidator валидатор правил бронирования
type RulesValidator interface {
	Validate(ctx context.Context, req *bookingrules.Request) (*bookingrules.Result, error)
}

// TransactionManager выполняет функцию в сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier асинхронно уведомляет о подтвержденном бронировании
type Notifier interface {
	BookingConfirmed(b *domain.Booking)
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

package create_booking

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/service/bookingrules"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// RulesValidator валидатор правил бронирования
type RulesValidator interface {
	Validate(ctx context.Context, req *bookingrules.Request) (*bookingrules.Result, error)
}

// TransactionManager выполняет функцию в сериализуемой транзакции.
// Проверка правил и запись должны видеть одно и то же состояние занятости.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier асинхронно уведомляет о подтвержденном бронировании.
// Ошибки доставки не влияют на результат операции.
type Notifier interface {
	BookingConfirmed(b *domain.Booking)
}

// CalendarInvalidator инвалидирует кеш календарей после записи
type CalendarInvalidator interface {
	InvalidateCalendars(ctx context.Context)
}

// BookingCounter счетчик созданных бронирований по типу
type BookingCounter interface {
	BookingCreated(bookingType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package inventory

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// ChannelRepository интерфейс репозитория каталога инвентаря
type ChannelRepository interface {
	List(ctx context.Context, typeFilter *domain.ChannelType) ([]*domain.Channel, error)
	GetByID(ctx context.Context, id string) (*domain.Channel, error)
	Create(ctx context.Context, ch *domain.Channel) (*domain.Channel, error)
	Update(ctx context.Context, ch *domain.Channel) error
	Delete(ctx context.Context, id string) error
}

// BookingRepository подсчет бронирований, ссылающихся на канал.
// Используется при удалении: канал с бронированиями удалить нельзя.
type BookingRepository interface {
	CountByChannel(ctx context.Context, channelID string) (int, error)
}

// CalendarInvalidator инвалидирует кеш календарей после изменения емкости
type CalendarInvalidator interface {
	InvalidateCalendars(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

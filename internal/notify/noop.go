package notify

import "github.com/premiermedia/AdBookingService/internal/domain"

// NoopNotifier заглушка для конфигураций без брокера
type NoopNotifier struct{}

// NewNoopNotifier создает заглушку уведомлений
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (*NoopNotifier) BookingConfirmed(*domain.Booking) {}

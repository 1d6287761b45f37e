package notify

import (
	"context"
	"sync"
	"time"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// maxAttempts количество попыток доставки одного события
const maxAttempts = 3

// EventPublisher публикует одно событие в брокер
type EventPublisher interface {
	Publish(ctx context.Context, event *BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dispatcher доставляет события в фоне. Каждое событие уходит в отдельной
// горутине с повторами; окончательная неудача только логируется - бронирование
// к этому моменту уже записано и не откатывается.
type Dispatcher struct {
	publisher EventPublisher
	logger    Logger
	wg        sync.WaitGroup
}

// NewDispatcher создает фоновый доставщик событий
func NewDispatcher(publisher EventPublisher, logger Logger) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		logger:    logger,
	}
}

// BookingConfirmed ставит событие подтверждения в фоновую доставку
func (d *Dispatcher) BookingConfirmed(b *domain.Booking) {
	event := NewBookingEvent(b)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(event)
	}()
}

func (d *Dispatcher) deliver(event *BookingEvent) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(time.Duration(attempt-1) * 500 * time.Millisecond)
		}

		if err := d.publisher.Publish(context.Background(), event); err != nil {
			d.logger.Warn("notify: attempt %d/%d failed for booking %s: %v",
				attempt, maxAttempts, event.BookingID, err)
			continue
		}

		d.logger.Info("notify: published booking.confirmed for %s", event.BookingID)
		return
	}

	d.logger.Error("notify: giving up on booking %s after %d attempts",
		event.BookingID, maxAttempts)
}

// Wait дожидается доставки всех поставленных событий. Используется при
// graceful shutdown и в тестах.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

type fakePublisher struct {
	mu       sync.Mutex
	failures int
	events   []*BookingEvent
}

func (f *fakePublisher) Publish(_ context.Context, event *BookingEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("broker unavailable")
	}
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           "b1",
		ClientName:   "Acme",
		CampaignName: "Summer",
		BookingType:  domain.TypeBespokeESend,
		Department:   domain.DepartmentSales,
		Status:       domain.StatusConfirmed,
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-10",
		EmailDates:   []types.DateString{"2025-06-10"},
	}
}

func TestDispatcher_DeliversEvent(t *testing.T) {
	publisher := &fakePublisher{}
	d := NewDispatcher(publisher, nopLogger{})

	d.BookingConfirmed(confirmedBooking())
	d.Wait()

	assert.Len(t, publisher.events, 1)
	assert.Equal(t, "b1", publisher.events[0].BookingID)
	assert.Equal(t, []string{"2025-06-10"}, publisher.events[0].EmailDates)
}

func TestDispatcher_RetriesTransientFailures(t *testing.T) {
	publisher := &fakePublisher{failures: 2}
	d := NewDispatcher(publisher, nopLogger{})

	d.BookingConfirmed(confirmedBooking())
	d.Wait()

	assert.Len(t, publisher.events, 1)
}

func TestDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	publisher := &fakePublisher{failures: maxAttempts}
	d := NewDispatcher(publisher, nopLogger{})

	d.BookingConfirmed(confirmedBooking())
	d.Wait()

	// доставка не удалась, но это не паника и не блокировка
	assert.Empty(t, publisher.events)
}

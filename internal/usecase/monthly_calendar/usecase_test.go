package monthly_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiermedia/AdBookingService/internal/domain"
	channelRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/channel"
)

type fakeChannelRepo struct {
	channels map[string]*domain.Channel
}

func (f *fakeChannelRepo) GetByID(_ context.Context, id string) (*domain.Channel, error) {
	ch, ok := f.channels[id]
	if !ok {
		return nil, channelRepo.ErrChannelNotFound
	}
	return ch, nil
}

func (f *fakeChannelRepo) List(_ context.Context, typeFilter *domain.ChannelType) ([]*domain.Channel, error) {
	var out []*domain.Channel
	for _, ch := range f.channels {
		if typeFilter == nil || ch.Type == *typeFilter {
			out = append(out, ch)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	calls    int
}

func (f *fakeBookingRepo) List(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	return f.bookings, nil
}

type fakeCache struct {
	entries map[string]domain.MonthlyCalendar
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]domain.MonthlyCalendar)}
}

func (f *fakeCache) GetCalendar(_ context.Context, key string) (domain.MonthlyCalendar, bool) {
	cal, ok := f.entries[key]
	return cal, ok
}

func (f *fakeCache) SetCalendar(_ context.Context, key string, calendar domain.MonthlyCalendar) {
	f.sets++
	f.entries[key] = calendar
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_CachesBuiltCalendar(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"email-cty": {ID: "email-cty", Type: domain.TypeBespokeESend, TotalCapacity: 1},
	}}
	bookings := &fakeBookingRepo{}
	cache := newFakeCache()

	uc := NewUseCase(channels, bookings, cache, nopLogger{})
	req := &Request{Type: domain.TypeBespokeESend, Year: 2025, Month: time.June}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, bookings.calls)
	assert.Equal(t, 1, cache.sets)

	// повторный запрос обслуживается из кеша без похода в хранилище
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, bookings.calls)
	assert.Equal(t, first.Days, second.Days)
}

func TestExecute_CacheKeyDistinguishesTargets(t *testing.T) {
	target := "email-cty"

	all := &Request{Type: domain.TypeAdsInESend, Year: 2025, Month: time.June}
	scoped := &Request{Type: domain.TypeAdsInESend, Year: 2025, Month: time.June, TargetID: &target}

	assert.Equal(t, "calendar:ADS_IN_ESEND:all:2025-06", all.cacheKey())
	assert.Equal(t, "calendar:ADS_IN_ESEND:email-cty:2025-06", scoped.cacheKey())
}

func TestExecute_RejectsInvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeChannelRepo{}, &fakeBookingRepo{}, newFakeCache(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Type: domain.TypeBespokeESend, Year: 2025, Month: 13,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

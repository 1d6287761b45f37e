package check_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiermedia/AdBookingService/internal/domain"
	channelRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/channel"
	"github.com/premiermedia/AdBookingService/pkg/types"
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
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.OverlapStart != nil && b.EndDate.Before(*filter.OverlapStart) {
			continue
		}
		if filter.OverlapEnd != nil && b.StartDate.After(*filter.OverlapEnd) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func audioChannel(id string, capacity int) *domain.Channel {
	return &domain.Channel{ID: id, Name: id, Type: domain.TypeAudio, TotalCapacity: capacity, Unit: "spots"}
}

func audioBooking(targetID *string, spots int, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:            "b-" + start,
		BookingType:   domain.TypeAudio,
		Status:        domain.StatusConfirmed,
		AudioTargetID: targetID,
		AudioSpots:    spots,
		StartDate:     types.DateString(start),
		EndDate:       types.DateString(end),
	}
}

func newTestUseCase(channels *fakeChannelRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(channels, bookings, nopLogger{})
}

func TestExecute_AggregateTypeCapacity(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"audio-pop":  audioChannel("audio-pop", 100),
		"audio-talk": audioChannel("audio-talk", 50),
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		audioBooking(nil, 40, "2025-06-01", "2025-06-30"),
	}}

	uc := newTestUseCase(channels, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:  domain.TypeAudio,
		Start: "2025-06-01",
		End:   "2025-06-30",
	})

	require.NoError(t, err)
	assert.Equal(t, 150, resp.Capacity)
	assert.Equal(t, 40, resp.Used)
	assert.Equal(t, 110, resp.Available)
}

func TestExecute_TargetChannelCountsOnlyItsBookings(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"audio-pop":  audioChannel("audio-pop", 100),
		"audio-talk": audioChannel("audio-talk", 50),
	}}
	pop := "audio-pop"
	talk := "audio-talk"
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		audioBooking(&pop, 30, "2025-06-01", "2025-06-30"),
		audioBooking(&talk, 20, "2025-06-01", "2025-06-30"),
		// run-of-network бронирование не относится к конкретному каналу
		audioBooking(nil, 10, "2025-06-01", "2025-06-30"),
	}}

	uc := newTestUseCase(channels, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:     domain.TypeAudio,
		Start:    "2025-06-01",
		End:      "2025-06-30",
		TargetID: &pop,
	})

	require.NoError(t, err)
	assert.Equal(t, 100, resp.Capacity)
	assert.Equal(t, 30, resp.Used)
	assert.Equal(t, 70, resp.Available)
}

func TestExecute_OversellIsNegative(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"audio-pop": audioChannel("audio-pop", 50),
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		audioBooking(nil, 80, "2025-06-01", "2025-06-30"),
	}}

	uc := newTestUseCase(channels, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:  domain.TypeAudio,
		Start: "2025-06-01",
		End:   "2025-06-30",
	})

	// перепроданный остаток не обрезается нулем
	require.NoError(t, err)
	assert.Equal(t, -30, resp.Available)
}

func TestExecute_UnknownTargetIsEmptyInventory(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{}}
	bookings := &fakeBookingRepo{}

	uc := newTestUseCase(channels, bookings)

	missing := "audio-missing"
	resp, err := uc.Execute(context.Background(), &Request{
		Type:     domain.TypeAudio,
		Start:    "2025-06-01",
		End:      "2025-06-30",
		TargetID: &missing,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Capacity)
	assert.Equal(t, 0, resp.Available)
}

func TestExecute_NonOverlappingBookingsIgnored(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"audio-pop": audioChannel("audio-pop", 100),
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		audioBooking(nil, 40, "2025-05-01", "2025-05-31"),
		audioBooking(nil, 25, "2025-06-15", "2025-07-15"),
	}}

	uc := newTestUseCase(channels, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:  domain.TypeAudio,
		Start: "2025-06-01",
		End:   "2025-06-30",
	})

	require.NoError(t, err)
	assert.Equal(t, 25, resp.Used)
}

func TestExecute_EmailUsageCountsDates(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"email-cty": {ID: "email-cty", Type: domain.TypeBespokeESend, TotalCapacity: 1, Unit: "sends"},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:          "b1",
			BookingType: domain.TypeBespokeESend,
			Status:      domain.StatusConfirmed,
			StartDate:   "2025-06-03",
			EndDate:     "2025-06-10",
			EmailDates:  []types.DateString{"2025-06-03", "2025-06-10"},
		},
	}}

	uc := newTestUseCase(channels, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:  domain.TypeBespokeESend,
		Start: "2025-06-01",
		End:   "2025-06-30",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Used)
}

func TestExecute_AdsTargetCountsRecordedChannel(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"esend-daily": {ID: "esend-daily", Type: domain.TypeAdsInESend, TotalCapacity: 3, Unit: "slots"},
	}}
	daily := "esend-daily"
	other := "esend-weekly"
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:              "b1",
			BookingType:     domain.TypeAdsInESend,
			Status:          domain.StatusConfirmed,
			StartDate:       "2025-06-02",
			EndDate:         "2025-06-04",
			EmailDates:      []types.DateString{"2025-06-02", "2025-06-04"},
			TargetChannelID: &daily,
		},
		{
			ID:              "b2",
			BookingType:     domain.TypeAdsInESend,
			Status:          domain.StatusConfirmed,
			StartDate:       "2025-06-03",
			EndDate:         "2025-06-03",
			EmailDates:      []types.DateString{"2025-06-03"},
			TargetChannelID: &other,
		},
	}}

	uc := newTestUseCase(channels, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:     domain.TypeAdsInESend,
		Start:    "2025-06-01",
		End:      "2025-06-30",
		TargetID: &daily,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Capacity)
	assert.Equal(t, 2, resp.Used)
	assert.Equal(t, 1, resp.Available)
}

func TestExecute_DeletedBookingRestoresAvailability(t *testing.T) {
	channels := &fakeChannelRepo{channels: map[string]*domain.Channel{
		"audio-pop": audioChannel("audio-pop", 100),
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		audioBooking(nil, 40, "2025-06-01", "2025-06-30"),
	}}

	uc := newTestUseCase(channels, bookings)
	req := &Request{Type: domain.TypeAudio, Start: "2025-06-01", End: "2025-06-30"}

	before, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 60, before.Available)

	// удаление бронирования: занятость пересчитывается по живому набору
	bookings.bookings = nil

	after, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 100, after.Available)
}

func TestExecute_RejectsInvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakeChannelRepo{}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Type:  domain.TypeAudio,
		Start: "2025-06-30",
		End:   "2025-06-01",
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

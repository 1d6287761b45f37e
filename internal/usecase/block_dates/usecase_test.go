package block_dates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.created = append(f.created, b)
	return b, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateCalendars(context.Context) {
	f.calls++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_CreatesSyntheticBlockBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	invalidator := &fakeInvalidator{}
	uc := NewUseCase(repo, invalidator, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Type:   domain.TypeBespokeESend,
		Dates:  []types.DateString{"2025-06-10", "2025-06-08"},
		Reason: "Platform maintenance",
	})
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, domain.BlockedClientName, b.ClientName)
	assert.Equal(t, "Platform maintenance", b.CampaignName)
	assert.Equal(t, domain.DepartmentInternal, b.Department)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.True(t, b.IsBlocked)
	// блокировки разрешены даже по воскресеньям - правила не применяются
	assert.Equal(t, types.DateString("2025-06-08"), b.StartDate)
	assert.Equal(t, types.DateString("2025-06-10"), b.EndDate)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, invalidator.calls)
}

func TestExecute_AdsBlockCarriesTargetChannel(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeInvalidator{}, nopLogger{})

	target := "email-pg"
	resp, err := uc.Execute(context.Background(), &Request{
		Type:            domain.TypeAdsInESend,
		Dates:           []types.DateString{"2025-06-06"},
		Reason:          "Editorial takeover",
		TargetChannelID: &target,
	})
	require.NoError(t, err)

	// блокировка должна потреблять емкость именно этого канала
	require.NotNil(t, resp.Booking.TargetChannelID)
	assert.Equal(t, target, *resp.Booking.TargetChannelID)
	assert.True(t, resp.Booking.TargetsChannel(target))
}

func TestExecute_AdsBlockRequiresTargetChannel(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeInvalidator{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Type:   domain.TypeAdsInESend,
		Dates:  []types.DateString{"2025-06-06"},
		Reason: "Editorial takeover",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RequiresDatesAndReason(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeInvalidator{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Type:   domain.TypeBespokeESend,
		Reason: "maintenance",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Type:  domain.TypeBespokeESend,
		Dates: []types.DateString{"2025-06-10"},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

package create_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/service/bookingrules"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.created = append(f.created, b)
	return b, nil
}

type fakeRules struct {
	result  *bookingrules.Result
	lastReq *bookingrules.Request
	calls   int
}

func (f *fakeRules) Validate(_ context.Context, req *bookingrules.Request) (*bookingrules.Result, error) {
	f.calls++
	f.lastReq = req
	if f.result != nil {
		return f.result, nil
	}
	return &bookingrules.Result{Valid: true}, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	notified []*domain.Booking
}

func (f *fakeNotifier) BookingConfirmed(b *domain.Booking) {
	f.notified = append(f.notified, b)
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateCalendars(context.Context) {
	f.calls++
}

type fakeCounter struct {
	byType map[string]int
}

func (f *fakeCounter) BookingCreated(bookingType string) {
	if f.byType == nil {
		f.byType = make(map[string]int)
	}
	f.byType[bookingType]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	repo        *fakeBookingRepo
	rules       *fakeRules
	notifier    *fakeNotifier
	invalidator *fakeInvalidator
	counter     *fakeCounter
	uc          *UseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:        &fakeBookingRepo{},
		rules:       &fakeRules{},
		notifier:    &fakeNotifier{},
		invalidator: &fakeInvalidator{},
		counter:     &fakeCounter{},
	}
	env.uc = NewUseCase(env.repo, env.rules, passthroughTx{}, env.notifier, env.invalidator, env.counter, nopLogger{})
	return env
}

func bespokeRequest() *Request {
	return &Request{
		ClientName:    "Acme",
		CampaignName:  "Summer",
		BookingType:   domain.TypeBespokeESend,
		Department:    domain.DepartmentSales,
		EmailDates:    []types.DateString{"2025-06-10", "2025-06-03"},
		TargetListIDs: []string{"list-marketplace"},
	}
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), bespokeRequest())
	require.NoError(t, err)

	b := resp.Booking
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	// flight-диапазон выводится из дат рассылок
	assert.Equal(t, types.DateString("2025-06-03"), b.StartDate)
	assert.Equal(t, types.DateString("2025-06-10"), b.EndDate)

	require.Len(t, env.repo.created, 1)
	require.Len(t, env.notifier.notified, 1)
	assert.Equal(t, b.ID, env.notifier.notified[0].ID)
	assert.Equal(t, 1, env.invalidator.calls)
	assert.Equal(t, 1, env.counter.byType["BESPOKE_ESEND"])
}

func TestExecute_RuleViolationWritesNothing(t *testing.T) {
	env := newTestEnv()
	env.rules.result = &bookingrules.Result{
		Valid:   false,
		Rule:    bookingrules.RuleSundayBlackout,
		Message: "Bookings are not allowed on Sundays (2025-06-08).",
	}

	_, err := env.uc.Execute(context.Background(), bespokeRequest())

	require.ErrorIs(t, err, ErrRuleViolation)
	assert.Contains(t, err.Error(), "Bookings are not allowed on Sundays (2025-06-08).")
	assert.Empty(t, env.repo.created)
	assert.Empty(t, env.notifier.notified)
	assert.Equal(t, 0, env.invalidator.calls)
}

func TestExecute_ValidatorSeesRequestedDatesAndLists(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), bespokeRequest())
	require.NoError(t, err)

	require.NotNil(t, env.rules.lastReq)
	assert.Equal(t, domain.DepartmentSales, env.rules.lastReq.Department)
	assert.Equal(t, []types.DateString{"2025-06-10", "2025-06-03"}, env.rules.lastReq.Dates)
	assert.Equal(t, []string{"list-marketplace"}, env.rules.lastReq.ListIDs)
	assert.Nil(t, env.rules.lastReq.ExcludeBookingID)
}

func TestExecute_DraftSkipsRulesAndNotification(t *testing.T) {
	env := newTestEnv()

	req := bespokeRequest()
	req.Draft = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, resp.Booking.Status)
	assert.Equal(t, 0, env.rules.calls, "drafts do not consume capacity and skip rule checks")
	assert.Empty(t, env.notifier.notified)
	require.Len(t, env.repo.created, 1)
}

func TestExecute_DefaultsDepartmentToSales(t *testing.T) {
	env := newTestEnv()

	req := bespokeRequest()
	req.Department = ""

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DepartmentSales, resp.Booking.Department)
}

func TestExecute_RejectsAdsWithoutTargetChannel(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), &Request{
		ClientName:   "Acme",
		CampaignName: "Summer",
		BookingType:  domain.TypeAdsInESend,
		EmailDates:   []types.DateString{"2025-06-06"},
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, env.repo.created)
}

func TestExecute_RejectsEmailBookingWithoutDates(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), &Request{
		ClientName:   "Acme",
		CampaignName: "Summer",
		BookingType:  domain.TypeBespokeESend,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AudioRequiresFlightAndSpots(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), &Request{
		ClientName:   "Acme",
		CampaignName: "Summer",
		BookingType:  domain.TypeAudio,
		StartDate:    "2025-06-01",
		EndDate:      "2025-06-30",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	resp, err := env.uc.Execute(context.Background(), &Request{
		ClientName:   "Acme",
		CampaignName: "Summer",
		BookingType:  domain.TypeAudio,
		StartDate:    "2025-06-01",
		EndDate:      "2025-06-30",
		AudioSpots:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Booking.AudioSpots)
	// аудио-типы не проходят bespoke-правила, но валидатор все равно
	// вызывается и пропускает их
	assert.Equal(t, 1, env.rules.calls)
}

package bookingrules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if filter.ExcludeID == nil {
		return f.bookings, nil
	}
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.ID != *filter.ExcludeID {
			out = append(out, b)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dates(ss ...string) []types.DateString {
	out := make([]types.DateString, len(ss))
	for i, s := range ss {
		out[i] = types.DateString(s)
	}
	return out
}

func bespokeBooking(id string, dept domain.Department, sendDates ...string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientName:  "Acme",
		BookingType: domain.TypeBespokeESend,
		Department:  dept,
		Status:      domain.StatusConfirmed,
		EmailDates:  dates(sendDates...),
	}
}

func newTestService(existing ...*domain.Booking) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: existing}
	return NewService(repo, nopLogger{}), repo
}

func TestValidate_NonBespokePassesWithoutChecks(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeAudio,
		// даже воскресенье не должно мешать
		Dates: dates("2025-06-08"),
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Nil(t, repo.lastFilter.Status, "storage must not be consulted for non-bespoke types")
}

func TestValidate_SundayBlackout(t *testing.T) {
	svc, _ := newTestService()

	// 2025-06-08 - воскресенье
	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-06", "2025-06-08"),
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleSundayBlackout, result.Rule)
	assert.Equal(t, "Bookings are not allowed on Sundays (2025-06-08).", result.Message)
}

func TestValidate_LegacyEmailTypeIsBespoke(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeEmail,
		Dates:       dates("2025-06-08"),
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleSundayBlackout, result.Rule)
}

func TestValidate_LegacyEmailRowsCountAsExisting(t *testing.T) {
	legacy := bespokeBooking("b1", domain.DepartmentMarketing, "2025-06-10")
	legacy.BookingType = domain.TypeEmail

	svc, _ := newTestService(legacy)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-10"),
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleDepartmentExclusivity, result.Rule)
}

func TestValidate_DepartmentExclusivity(t *testing.T) {
	svc, _ := newTestService(
		bespokeBooking("b1", domain.DepartmentMarketing, "2025-06-10"),
	)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-10"),
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleDepartmentExclusivity, result.Rule)
	assert.Equal(t,
		"Date 2025-06-10 is already booked by MARKETING. Sales and Marketing/Fundraising cannot book the same day.",
		result.Message)
}

func TestValidate_SameDepartmentSharesDay(t *testing.T) {
	svc, _ := newTestService(
		bespokeBooking("b1", domain.DepartmentSales, "2025-06-10"),
	)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-10"),
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_SalesWeeklyCap(t *testing.T) {
	// неделя 2025-06-09 (понедельник) уже содержит 2 SALES-рассылки
	svc, _ := newTestService(
		bespokeBooking("b1", domain.DepartmentSales, "2025-06-10"),
		bespokeBooking("b2", domain.DepartmentSales, "2025-06-12"),
	)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-13"),
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleSalesWeeklyCap, result.Rule)
	assert.Equal(t, "Sales limited to 2 E-sends per week. Week of Jun 9 already has 2.", result.Message)
}

func TestValidate_SalesWeeklyCapExactlyTwoAllowed(t *testing.T) {
	svc, _ := newTestService(
		bespokeBooking("b1", domain.DepartmentSales, "2025-06-10"),
	)

	// вторая рассылка на той же неделе - ровно лимит
	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-12"),
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_SalesWeeklyCapCountsRequestDates(t *testing.T) {
	svc, _ := newTestService()

	// три даты в одной неделе внутри одного запроса
	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-09", "2025-06-10", "2025-06-11"),
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleSalesWeeklyCap, result.Rule)
}

func TestValidate_WeeklyCapIgnoresOtherDepartments(t *testing.T) {
	svc, _ := newTestService(
		bespokeBooking("b1", domain.DepartmentMarketing, "2025-06-10"),
		bespokeBooking("b2", domain.DepartmentMarketing, "2025-06-12"),
	)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentMarketing,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-13"),
	})

	// лимит недели применяется только к SALES
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_MonthlyListCapAgainstExisting(t *testing.T) {
	existing := bespokeBooking("b1", domain.DepartmentMarketing, "2025-06-03")
	existing.TargetListIDs = []string{"list-marketplace"}

	svc, _ := newTestService(existing)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentMarketing,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-17"),
		ListIDs:     []string{"list-marketplace"},
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleMonthlyListCap, result.Rule)
	assert.Equal(t,
		"List 'Marketplace' is limited to 1 send per month. Already booked in Jun 2025.",
		result.Message)
}

func TestValidate_MonthlyListCapWithinRequest(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentMarketing,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-03", "2025-06-17"),
		ListIDs:     []string{"list-e-appeal"},
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleMonthlyListCap, result.Rule)
	assert.Equal(t,
		"List 'E-appeal' is limited to 1 send per month. You selected 2 dates.",
		result.Message)
}

func TestValidate_UncappedListUnlimited(t *testing.T) {
	existing := bespokeBooking("b1", domain.DepartmentMarketing, "2025-06-03")
	existing.TargetListIDs = []string{"list-general-news"}

	svc, _ := newTestService(existing)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentMarketing,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-17"),
		ListIDs:     []string{"list-general-news"},
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_MonthlyListCapDifferentMonthsAllowed(t *testing.T) {
	existing := bespokeBooking("b1", domain.DepartmentMarketing, "2025-06-03")
	existing.TargetListIDs = []string{"list-marketplace"}

	svc, _ := newTestService(existing)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentMarketing,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-07-01"),
		ListIDs:     []string{"list-marketplace"},
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_ExcludeBookingIDSkipsSelf(t *testing.T) {
	// бронирование редактируется: его собственные даты не должны
	// конфликтовать с ним самим
	existing := bespokeBooking("b1", domain.DepartmentSales, "2025-06-10")
	existing.TargetListIDs = []string{"list-marketplace"}

	svc, _ := newTestService(existing)

	excludeID := "b1"
	result, err := svc.Validate(context.Background(), &Request{
		Department:       domain.DepartmentSales,
		BookingType:      domain.TypeBespokeESend,
		Dates:            dates("2025-06-10"),
		ListIDs:          []string{"list-marketplace"},
		ExcludeBookingID: &excludeID,
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_RuleOrderSundayFirst(t *testing.T) {
	// запрос нарушает и воскресенье, и эксклюзивность - отчет должен
	// быть про воскресенье
	svc, _ := newTestService(
		bespokeBooking("b1", domain.DepartmentMarketing, "2025-06-06"),
	)

	result, err := svc.Validate(context.Background(), &Request{
		Department:  domain.DepartmentSales,
		BookingType: domain.TypeBespokeESend,
		Dates:       dates("2025-06-06", "2025-06-08"),
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, RuleSundayBlackout, result.Rule)
}

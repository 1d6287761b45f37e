package monthly_calendar

import (
	"time"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// buildCalendar строит календарь месяца. Емкость каждого дня стартует с
// baseline и обнуляется категорийными правилами до вычитания занятости:
//
//   - ADS_IN_ESEND с конкретным каналом: вне каденса публикации емкость 0;
//     канал без каденса публикуется каждый день
//   - BESPOKE_ESEND (и legacy EMAIL): воскресенье - емкость 0; в неделе,
//     где уже подтверждены 2+ bespoke-рассылки, свободные дни обнуляются,
//     но дни с существующей занятостью не помечаются заново как перебор
//
// Available обрезается нулем - это слой отображения; перебронирование
// сигнализируется диапазонным расчетом, а не календарем.
func buildCalendar(req *Request, baseline int, targetChannel *domain.Channel, bookings []*domain.Booking) domain.MonthlyCalendar {
	numDays := domain.DaysInMonth(req.Year, req.Month)
	days := make(domain.MonthlyCalendar, numDays)

	usedByDay := make(map[int]int, numDays)
	for d := 1; d <= numDays; d++ {
		usedByDay[d] = dayUsage(req, domain.DateOfDay(req.Year, req.Month, d), bookings)
	}

	// Недельная занятость bespoke-рассылок считается по датам самих
	// бронирований - неделя может выходить за границы месяца.
	var weeklyUsage map[types.DateString]int
	if req.Type.IsBespoke() {
		weeklyUsage = bespokeWeeklyUsage(bookings)
	}

	for d := 1; d <= numDays; d++ {
		date := domain.DateOfDay(req.Year, req.Month, d)
		used := usedByDay[d]

		capacity := baseline
		switch {
		case req.Type == domain.TypeAdsInESend && targetChannel != nil:
			if !targetChannel.Cadence.Publishes(date.Weekday()) {
				capacity = 0
			}
		case req.Type.IsBespoke():
			if date.Weekday() == time.Sunday {
				capacity = 0
			} else if weeklyUsage[domain.WeekStart(date)] >= domain.SalesWeeklyESendCap && used == 0 {
				capacity = 0
			}
		}

		available := capacity - used
		if available < 0 {
			available = 0
		}

		days[d] = domain.DayAvailability{
			Used:      used,
			Available: available,
			Capacity:  capacity,
		}
	}

	return days
}

// dayUsage считает занятость одного дня. Email-бронирование занимает день,
// если точная дата есть в его emailDates; для ads-in-esend дополнительно
// должен совпасть записанный target-канал (если задан фильтр).
// AUDIO/DISPLAY - flight-based емкость, по дням не раскладывается.
func dayUsage(req *Request, date types.DateString, bookings []*domain.Booking) int {
	used := 0
	for _, b := range bookings {
		switch {
		case req.Type.IsBespoke():
			if b.BookingType.IsBespoke() && b.HasEmailDate(date) {
				used++
			}
		case req.Type == domain.TypeAdsInESend:
			if b.BookingType != domain.TypeAdsInESend || !b.HasEmailDate(date) {
				continue
			}
			if req.TargetID == nil || b.TargetsChannel(*req.TargetID) {
				used++
			}
		}
	}
	return used
}

// bespokeWeeklyUsage считает подтвержденные bespoke-даты по ISO-неделям
func bespokeWeeklyUsage(bookings []*domain.Booking) map[types.DateString]int {
	usage := make(map[types.DateString]int)
	for _, b := range bookings {
		if !b.BookingType.IsBespoke() {
			continue
		}
		for _, d := range b.EmailDates {
			usage[domain.WeekStart(d)]++
		}
	}
	return usage
}

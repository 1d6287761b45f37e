// Package bookingrules реализует правила бронирования bespoke-рассылок:
// запрет воскресений, эксклюзивность департаментов в пределах дня,
// недельный лимит отдела продаж и месячные лимиты закрытых списков.
package bookingrules

import (
	"context"
	"fmt"
	"time"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/ptr"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// Service валидатор правил бронирования. Только читает - вся запись
// выполняется lifecycle-слоем после положительного результата.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр валидатора
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Validate прогоняет запрос через правила в фиксированном порядке и
// возвращает первое нарушение. Правила применяются только к bespoke-рассылкам;
// остальные типы проходят безусловно.
//
// Порядок проверок:
//  1. запрет воскресений
//  2. эксклюзивность департаментов в пределах календарного дня
//  3. недельный лимит SALES (2 рассылки на ISO-неделю, недели с понедельника)
//  4. месячный лимит закрытого набора списков (1 рассылка на список в месяц)
func (s *Service) Validate(ctx context.Context, req *Request) (*Result, error) {
	if !req.BookingType.IsBespoke() {
		return ok(), nil
	}

	for _, d := range req.Dates {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("validate: %w", err)
		}
	}

	// 1. Запрет воскресений - проверяется до обращения к хранилищу
	for _, d := range req.Dates {
		if d.Weekday() == time.Sunday {
			return violated(RuleSundayBlackout,
				fmt.Sprintf("Bookings are not allowed on Sundays (%s).", d)), nil
		}
	}

	// Существующая занятость читается один раз; дальнейшие проверки
	// выполняются в памяти по явным датам и идентификаторам списков.
	existing, err := s.confirmedBespoke(ctx, req.ExcludeBookingID)
	if err != nil {
		return nil, err
	}

	// 2. Эксклюзивность департаментов: SALES исключает
	// MARKETING/FUNDRAISING/INTERNAL и наоборот в пределах одного дня
	for _, d := range req.Dates {
		for _, b := range existing {
			if b.Department != req.Department && b.HasEmailDate(d) {
				return violated(RuleDepartmentExclusivity, fmt.Sprintf(
					"Date %s is already booked by %s. Sales and Marketing/Fundraising cannot book the same day.",
					d, b.Department)), nil
			}
		}
	}

	// 3. Недельный лимит SALES
	if req.Department == domain.DepartmentSales {
		if result := s.checkSalesWeeklyCap(req.Dates, existing); !result.Valid {
			return result, nil
		}
	}

	// 4. Месячные лимиты списков
	if result := s.checkMonthlyListCaps(req.Dates, req.ListIDs, existing); !result.Valid {
		return result, nil
	}

	return ok(), nil
}

// confirmedBespoke возвращает подтвержденные bespoke-бронирования,
// опционально исключая редактируемое. Тип фильтруется в памяти:
// legacy-записи типа EMAIL тоже участвуют в правилах.
func (s *Service) confirmedBespoke(ctx context.Context, excludeID *string) ([]*domain.Booking, error) {
	filter := domain.BookingsFilter{
		Status:    ptr.Ptr(domain.StatusConfirmed),
		ExcludeID: excludeID,
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Validate: failed to load confirmed bespoke bookings: %v", err)
		return nil, fmt.Errorf("validate: load existing bookings: %w", err)
	}

	bespoke := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.BookingType.IsBespoke() {
			bespoke = append(bespoke, b)
		}
	}
	return bespoke, nil
}

// checkSalesWeeklyCap проверяет лимит 2 рассылки на ISO-неделю для SALES.
// Недели обходятся в порядке запрошенных дат - детерминированный first-failure.
func (s *Service) checkSalesWeeklyCap(dates []types.DateString, existing []*domain.Booking) *Result {
	seen := make(map[types.DateString]bool)

	for _, d := range dates {
		weekStart := domain.WeekStart(d)
		if seen[weekStart] {
			continue
		}
		seen[weekStart] = true

		existingCount := 0
		for _, b := range existing {
			if b.Department != domain.DepartmentSales {
				continue
			}
			for _, bd := range b.EmailDates {
				if domain.SameISOWeek(bd, d) {
					existingCount++
				}
			}
		}

		requestedCount := 0
		for _, rd := range dates {
			if domain.SameISOWeek(rd, d) {
				requestedCount++
			}
		}

		if existingCount+requestedCount > domain.SalesWeeklyESendCap {
			return violated(RuleSalesWeeklyCap, fmt.Sprintf(
				"Sales limited to %d E-sends per week. Week of %s already has %d.",
				domain.SalesWeeklyESendCap,
				weekStart.Time().Format(domain.DayFormat),
				existingCount))
		}
	}

	return ok()
}

// checkMonthlyListCaps проверяет лимит "1 рассылка в месяц" для закрытого
// набора списков. Списки и месяцы обходятся в порядке запроса.
func (s *Service) checkMonthlyListCaps(dates []types.DateString, listIDs []string, existing []*domain.Booking) *Result {
	for _, listID := range listIDs {
		if !domain.IsMonthlyCappedList(listID) {
			continue
		}
		displayName := domain.ListDisplayName(listID)

		seenMonths := make(map[string]bool)
		for _, d := range dates {
			monthKey := domain.MonthKey(d)
			if seenMonths[monthKey] {
				continue
			}
			seenMonths[monthKey] = true

			// (a) список уже использован в этом месяце другим бронированием
			for _, b := range existing {
				if !b.UsesList(listID) {
					continue
				}
				for _, bd := range b.EmailDates {
					if domain.SameMonth(bd, d) {
						return violated(RuleMonthlyListCap, fmt.Sprintf(
							"List '%s' is limited to 1 send per month. Already booked in %s.",
							displayName,
							bd.Time().Format(domain.MonthFormat)))
					}
				}
			}

			// (b) сам запрос содержит больше одной даты в этом месяце
			requestedCount := 0
			for _, rd := range dates {
				if domain.SameMonth(rd, d) {
					requestedCount++
				}
			}
			if requestedCount > 1 {
				return violated(RuleMonthlyListCap, fmt.Sprintf(
					"List '%s' is limited to 1 send per month. You selected %d dates.",
					displayName, requestedCount))
			}
		}
	}

	return ok()
}

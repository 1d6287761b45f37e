package monthly_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/premiermedia/AdBookingService/internal/domain"
	channelRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/channel"
	"github.com/premiermedia/AdBookingService/pkg/ptr"
)

// UseCase use case построения месячного календаря доступности
type UseCase struct {
	channelRepo ChannelRepository
	bookingRepo BookingRepository
	cache       CalendarCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	channelRepo ChannelRepository,
	bookingRepo BookingRepository,
	cache CalendarCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		channelRepo: channelRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Execute строит календарь доступности на месяц. Результат кешируется;
// запись любого бронирования инвалидирует кеш целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MonthlyCalendar: validation failed: %v", err)
		return nil, err
	}

	key := req.cacheKey()
	if days, hit := uc.cache.GetCalendar(ctx, key); hit {
		uc.logger.Debug("MonthlyCalendar: cache hit for %s", key)
		return uc.response(req, days), nil
	}

	baseline, targetChannel, err := uc.baseline(ctx, req)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := domain.MonthBounds(req.Year, req.Month)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Status:       ptr.Ptr(domain.StatusConfirmed),
		OverlapStart: &monthStart,
		OverlapEnd:   &monthEnd,
	})
	if err != nil {
		uc.logger.Error("MonthlyCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	days := buildCalendar(req, baseline, targetChannel, bookings)

	uc.cache.SetCalendar(ctx, key, days)
	uc.logger.Info("MonthlyCalendar: built calendar %s (%d days, capacity=%d)",
		key, len(days), baseline)

	return uc.response(req, days), nil
}

// baseline возвращает базовую емкость и, для конкретного target, сам канал
// (его каденс участвует в построении). Неизвестный канал - пустой инвентарь.
func (uc *UseCase) baseline(ctx context.Context, req *Request) (int, *domain.Channel, error) {
	if req.TargetID != nil {
		ch, err := uc.channelRepo.GetByID(ctx, *req.TargetID)
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			return 0, nil, nil
		}
		if err != nil {
			uc.logger.Error("MonthlyCalendar: failed to get channel %s: %v", *req.TargetID, err)
			return 0, nil, fmt.Errorf("%w: failed to get channel: %v", ErrInternal, err)
		}
		return ch.TotalCapacity, ch, nil
	}

	channels, err := uc.channelRepo.List(ctx, &req.Type)
	if err != nil {
		uc.logger.Error("MonthlyCalendar: failed to list channels: %v", err)
		return 0, nil, fmt.Errorf("%w: failed to list channels: %v", ErrInternal, err)
	}

	total := 0
	for _, ch := range channels {
		total += ch.TotalCapacity
	}
	return total, nil, nil
}

func (uc *UseCase) response(req *Request, days domain.MonthlyCalendar) *Response {
	return &Response{
		Type:     req.Type,
		Year:     req.Year,
		Month:    req.Month,
		TargetID: req.TargetID,
		Days:     days,
	}
}

func validateRequest(req *Request) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: unknown channel type %q", ErrInvalidInput, req.Type)
	}
	if req.Year < 2000 || req.Year > 2200 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month out of range", ErrInvalidInput)
	}
	return nil
}

package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/premiermedia/AdBookingService/internal/domain"
	channelRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/channel"
	"github.com/premiermedia/AdBookingService/pkg/ptr"
)

// UseCase use case расчета остатка емкости на диапазоне дат
type UseCase struct {
	channelRepo ChannelRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(channelRepo ChannelRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		channelRepo: channelRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute вычисляет остаток емкости: baseline минус занятость пересекающихся
// подтвержденных бронирований. Результат идемпотентен - занятость всегда
// считается по живому набору бронирований.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	baseline, err := uc.baseline(ctx, req.Type, req.TargetID)
	if err != nil {
		return nil, err
	}

	// Пересечение диапазонов: booking.start <= query.end AND booking.end >= query.start
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Status:       ptr.Ptr(domain.StatusConfirmed),
		OverlapStart: &req.Start,
		OverlapEnd:   &req.End,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	used := rangeUsage(req, bookings)

	uc.logger.Info("CheckAvailability: type=%s, window=%s..%s, capacity=%d, used=%d",
		req.Type, req.Start, req.End, baseline, used)

	return &Response{
		Type:      req.Type,
		Start:     req.Start,
		End:       req.End,
		TargetID:  req.TargetID,
		Capacity:  baseline,
		Used:      used,
		Available: baseline - used,
	}, nil
}

// baseline возвращает базовую емкость: емкость конкретного канала либо
// сумму емкостей всех каналов типа. Неизвестный канал или тип - пустой
// инвентарь (0), а не ошибка.
func (uc *UseCase) baseline(ctx context.Context, t domain.ChannelType, targetID *string) (int, error) {
	if targetID != nil {
		ch, err := uc.channelRepo.GetByID(ctx, *targetID)
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			return 0, nil
		}
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get channel %s: %v", *targetID, err)
			return 0, fmt.Errorf("%w: failed to get channel: %v", ErrInternal, err)
		}
		return ch.TotalCapacity, nil
	}

	channels, err := uc.channelRepo.List(ctx, &t)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list channels: %v", err)
		return 0, fmt.Errorf("%w: failed to list channels: %v", ErrInternal, err)
	}

	total := 0
	for _, ch := range channels {
		total += ch.TotalCapacity
	}
	return total, nil
}

func validateRequest(req *Request) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: unknown channel type %q", ErrInvalidInput, req.Type)
	}
	if err := req.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	if err := req.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}
	if req.End.Before(req.Start) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	return nil
}

// rangeUsage суммирует потребление пересекающихся бронирований.
// С конкретным target-каналом считаются только бронирования на него
// (аудио-таргет или записанный ads-in-esend канал); без него - агрегатное
// потребление по типу запроса.
func rangeUsage(req *Request, bookings []*domain.Booking) int {
	used := 0
	for _, b := range bookings {
		if req.TargetID != nil {
			if b.AudioTargetID != nil && *b.AudioTargetID == *req.TargetID {
				used += b.AudioSpots
			}
			if b.TargetsChannel(*req.TargetID) {
				used += len(b.EmailDates)
			}
			continue
		}

		switch {
		case req.Type == domain.TypeAudio:
			used += b.AudioSpots
		case req.Type == domain.TypeDisplay:
			used += b.DisplayImpressions
		case req.Type.IsBespoke():
			if b.BookingType.IsBespoke() {
				used += len(b.EmailDates)
			}
		case req.Type == domain.TypeAdsInESend:
			if b.BookingType == domain.TypeAdsInESend {
				used += len(b.EmailDates)
			}
		}
	}
	return used
}

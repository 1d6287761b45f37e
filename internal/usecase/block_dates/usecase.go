package block_dates

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// UseCase use case административной блокировки дат. Блокировка хранится как
// синтетическое подтвержденное бронирование, занимающее все указанные даты,
// поэтому расчеты доступности и правила видят ее как обычную занятость.
type UseCase struct {
	bookingRepo BookingRepository
	invalidator CalendarInvalidator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, invalidator CalendarInvalidator, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Execute блокирует даты. Правила бронирования не применяются - блокировка
// административная и ставится поверх любых ограничений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockDates: validation failed: %v", err)
		return nil, err
	}

	start, end := domain.DateRangeBounds(req.Dates)

	created, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		ID:              uuid.NewString(),
		ClientName:      domain.BlockedClientName,
		CampaignName:    req.Reason,
		StartDate:       start,
		EndDate:         end,
		BookingType:     req.Type,
		Department:      domain.DepartmentInternal,
		Status:          domain.StatusConfirmed,
		EmailDates:      req.Dates,
		TargetChannelID: req.TargetChannelID,
		IsBlocked:       true,
	})
	if err != nil {
		uc.logger.Error("BlockDates: failed to create block: %v", err)
		return nil, fmt.Errorf("%w: create block: %v", ErrInternal, err)
	}

	uc.logger.Info("BlockDates: blocked %d dates (%s..%s): %s",
		len(req.Dates), start, end, req.Reason)

	uc.invalidator.InvalidateCalendars(ctx)

	return &Response{Booking: created}, nil
}

func validateRequest(req *Request) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: unknown channel type %q", ErrInvalidInput, req.Type)
	}
	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}
	for _, d := range req.Dates {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
		}
	}
	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if req.Type == domain.TypeAdsInESend && req.TargetChannelID == nil {
		return fmt.Errorf("%w: ads-in-esend block requires a target channel", ErrInvalidInput)
	}
	return nil
}

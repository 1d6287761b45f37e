package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/premiermedia/AdBookingService/internal/domain"
	bookingRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/booking"
	"github.com/premiermedia/AdBookingService/internal/service/bookingrules"
)

// UseCase use case редактирования бронирования
type UseCase struct {
	bookingRepo BookingRepository
	rules       RulesValidator
	txManager   TransactionManager
	notifier    Notifier
	invalidator CalendarInvalidator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rules RulesValidator,
	txManager TransactionManager,
	notifier Notifier,
	invalidator CalendarInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		rules:       rules,
		txManager:   txManager,
		notifier:    notifier,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Execute редактирует бронирование. Измененная версия проходит правила
// заново, при этом само бронирование исключается из существующей занятости,
// чтобы не конфликтовать с собой. Чтение, проверка и запись выполняются
// в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	var updated *domain.Booking
	var wasConfirmed bool

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: id %s", ErrBookingNotFound, req.ID)
		}
		if err != nil {
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}
		wasConfirmed = current.Status.ConsumesCapacity()

		merged := mergeRequest(current, req)
		if err := validateMerged(merged); err != nil {
			return err
		}

		if merged.Status.ConsumesCapacity() {
			result, err := uc.rules.Validate(txCtx, &bookingrules.Request{
				Department:       merged.Department,
				BookingType:      merged.BookingType,
				Dates:            merged.EmailDates,
				ListIDs:          merged.TargetListIDs,
				ExcludeBookingID: &merged.ID,
			})
			if err != nil {
				return fmt.Errorf("%w: validate rules: %v", ErrInternal, err)
			}
			if !result.Valid {
				return fmt.Errorf("%w: %s", ErrRuleViolation, result.Message)
			}
		}

		if err := uc.bookingRepo.Update(txCtx, merged); err != nil {
			return fmt.Errorf("%w: update booking: %v", ErrInternal, err)
		}
		updated = merged
		return nil
	})
	if err != nil {
		uc.logger.Warn("UpdateBooking: rejected update of %s: %v", req.ID, err)
		return nil, err
	}

	uc.logger.Info("UpdateBooking: updated booking %s (%s, %s)",
		updated.ID, updated.BookingType, updated.Status)

	// Уведомление уходит только при переходе в CONFIRMED
	if updated.Status.ConsumesCapacity() && !wasConfirmed {
		uc.notifier.BookingConfirmed(updated)
	}
	uc.invalidator.InvalidateCalendars(ctx)

	return &Response{Booking: updated}, nil
}

// mergeRequest накладывает переданные поля на текущее состояние.
// Для email-типов flight-диапазон перевыводится из дат рассылок.
func mergeRequest(current *domain.Booking, req *Request) *domain.Booking {
	merged := *current

	if req.ClientName != nil {
		merged.ClientName = *req.ClientName
	}
	if req.CampaignName != nil {
		merged.CampaignName = *req.CampaignName
	}
	if req.Department != nil {
		merged.Department = *req.Department
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.StartDate != nil {
		merged.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		merged.EndDate = *req.EndDate
	}
	if req.AudioTargetID != nil {
		merged.AudioTargetID = req.AudioTargetID
	}
	if req.AudioSpots != nil {
		merged.AudioSpots = *req.AudioSpots
	}
	if req.DisplayImpressions != nil {
		merged.DisplayImpressions = *req.DisplayImpressions
	}
	if req.EmailDates != nil {
		merged.EmailDates = req.EmailDates
	}
	if req.TargetChannelID != nil {
		merged.TargetChannelID = req.TargetChannelID
	}
	if req.TargetListIDs != nil {
		merged.TargetListIDs = req.TargetListIDs
	}
	if req.AdditionalDetails != nil {
		merged.AdditionalDetails = req.AdditionalDetails
	}
	if req.ContractNumber != nil {
		merged.ContractNumber = req.ContractNumber
	}
	if req.BookerName != nil {
		merged.BookerName = req.BookerName
	}
	if req.GeoTarget != nil {
		merged.GeoTarget = req.GeoTarget
	}

	if merged.BookingType.IsEmail() {
		merged.StartDate, merged.EndDate = domain.DateRangeBounds(merged.EmailDates)
	}

	return &merged
}

func validateMerged(b *domain.Booking) error {
	if b.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, b.Status)
	}
	if !b.Department.Valid() {
		return fmt.Errorf("%w: unknown department %q", ErrInvalidInput, b.Department)
	}

	if b.BookingType.IsEmail() {
		if len(b.EmailDates) == 0 {
			return fmt.Errorf("%w: email booking requires at least one send date", ErrInvalidInput)
		}
		for _, d := range b.EmailDates {
			if err := d.Validate(); err != nil {
				return fmt.Errorf("%w: email date: %v", ErrInvalidInput, err)
			}
		}
		return nil
	}

	if err := b.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: start date: %v", ErrInvalidInput, err)
	}
	if err := b.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: end date: %v", ErrInvalidInput, err)
	}
	if b.EndDate.Before(b.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	return nil
}

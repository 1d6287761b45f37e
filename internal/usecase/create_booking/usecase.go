package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/service/bookingrules"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	rules       RulesValidator
	txManager   TransactionManager
	notifier    Notifier
	invalidator CalendarInvalidator
	counter     BookingCounter
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rules RulesValidator,
	txManager TransactionManager,
	notifier Notifier,
	invalidator CalendarInvalidator,
	counter BookingCounter,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		rules:       rules,
		txManager:   txManager,
		notifier:    notifier,
		invalidator: invalidator,
		counter:     counter,
		logger:      logger,
	}
}

// Execute создает бронирование. Проверка правил и запись выполняются в одной
// сериализуемой транзакции, поэтому два конкурирующих бронирования не могут
// оба пройти проверку против одной и той же емкости. При нарушении правила
// ничего не записывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	booking := uc.buildBooking(req)

	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if booking.Status.ConsumesCapacity() {
			result, err := uc.rules.Validate(txCtx, &bookingrules.Request{
				Department:  booking.Department,
				BookingType: booking.BookingType,
				Dates:       booking.EmailDates,
				ListIDs:     booking.TargetListIDs,
			})
			if err != nil {
				return fmt.Errorf("%w: validate rules: %v", ErrInternal, err)
			}
			if !result.Valid {
				return fmt.Errorf("%w: %s", ErrRuleViolation, result.Message)
			}
		}

		var err error
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: rejected booking for %s: %v", req.ClientName, err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %s (%s, %s, client=%s)",
		created.ID, created.BookingType, created.Status, created.ClientName)

	uc.counter.BookingCreated(string(created.BookingType))
	if created.Status.ConsumesCapacity() {
		uc.notifier.BookingConfirmed(created)
	}
	uc.invalidator.InvalidateCalendars(ctx)

	return &Response{Booking: created}, nil
}

// buildBooking собирает доменную модель из запроса. Для email-типов
// flight-диапазон выводится из дат рассылок.
func (uc *UseCase) buildBooking(req *Request) *domain.Booking {
	department := req.Department
	if department == "" {
		department = domain.DefaultDepartment
	}

	status := domain.StatusConfirmed
	if req.Draft {
		status = domain.StatusDraft
	}

	start, end := req.StartDate, req.EndDate
	if req.BookingType.IsEmail() {
		start, end = domain.DateRangeBounds(req.EmailDates)
	}

	return &domain.Booking{
		ID:                 uuid.NewString(),
		ClientName:         req.ClientName,
		CampaignName:       req.CampaignName,
		StartDate:          start,
		EndDate:            end,
		BookingType:        req.BookingType,
		Department:         department,
		Status:             status,
		AudioTargetID:      req.AudioTargetID,
		AudioSpots:         req.AudioSpots,
		DisplayImpressions: req.DisplayImpressions,
		EmailDates:         req.EmailDates,
		TargetChannelID:    req.TargetChannelID,
		TargetListIDs:      req.TargetListIDs,
		AdditionalDetails:  req.AdditionalDetails,
		ContractNumber:     req.ContractNumber,
		BookerName:         req.BookerName,
		GeoTarget:          req.GeoTarget,
	}
}

package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/booking"
	"github.com/premiermedia/AdBookingService/internal/service/bookings/models"
)

// Service сервис чтения и удаления бронирований. Создание и редактирование
// проходят через usecase-слой, где выполняется проверка правил.
type Service struct {
	bookingRepo BookingRepository
	invalidator CalendarInvalidator
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, invalidator CalendarInvalidator, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с фильтрацией по статусу, типу,
// департаменту и окну дат
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование. Освобожденная емкость сразу возвращается в
// расчеты доступности, кеш календарей инвалидируется.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking id=%s", id)
	s.invalidator.InvalidateCalendars(ctx)
	return nil
}

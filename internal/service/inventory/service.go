package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/premiermedia/AdBookingService/internal/domain"
	channelRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/channel"
	"github.com/premiermedia/AdBookingService/internal/service/inventory/models"
)

// Service сервис каталога инвентаря
type Service struct {
	channelRepo ChannelRepository
	bookingRepo BookingRepository
	invalidator CalendarInvalidator
	logger      Logger
}

// NewService создает новый экземпляр сервиса инвентаря
func NewService(
	channelRepo ChannelRepository,
	bookingRepo BookingRepository,
	invalidator CalendarInvalidator,
	logger Logger,
) *Service {
	return &Service{
		channelRepo: channelRepo,
		bookingRepo: bookingRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// List возвращает каналы, опционально отфильтрованные по типу
func (s *Service) List(ctx context.Context, channelType *string) (*models.ChannelListResponse, error) {
	var typeFilter *domain.ChannelType
	if channelType != nil {
		t := domain.ChannelType(*channelType)
		if !t.Valid() {
			s.logger.Warn("List: invalid channel type %q", *channelType)
			return nil, fmt.Errorf("%w: unknown channel type %q", ErrInvalidInput, *channelType)
		}
		typeFilter = &t
	}

	channels, err := s.channelRepo.List(ctx, typeFilter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainChannelList(channels), nil
}

// GetByID получает канал по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ChannelResponse, error) {
	ch, err := s.channelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			s.logger.Warn("GetByID: channel id=%s not found", id)
			return nil, ErrChannelNotFound
		}
		s.logger.Error("GetByID: repository error for channel id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainChannel(ch), nil
}

// Create создает новый канал
func (s *Service) Create(ctx context.Context, req *models.CreateChannelRequest) (*models.ChannelResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.channelRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, channelRepo.ErrChannelExists) {
			s.logger.Warn("Create: channel id=%s already exists", req.ID)
			return nil, ErrChannelExists
		}
		s.logger.Error("Create: repository error for channel id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created channel %s (%s, capacity=%d)",
		created.ID, created.Type, created.TotalCapacity)
	s.invalidator.InvalidateCalendars(ctx)

	return models.FromDomainChannel(created), nil
}

// Update обновляет канал. Изменение емкости действует немедленно: уже
// существующие бронирования не пересматриваются, а расчеты доступности
// сразу считаются от новой емкости.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateChannelRequest) (*models.ChannelResponse, error) {
	current, err := s.channelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			s.logger.Warn("Update: channel id=%s not found", id)
			return nil, ErrChannelNotFound
		}
		s.logger.Error("Update: repository error for channel id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.TotalCapacity != nil {
		if *req.TotalCapacity < 0 {
			return nil, fmt.Errorf("%w: capacity must be non-negative", ErrInvalidInput)
		}
		current.TotalCapacity = *req.TotalCapacity
	}
	if req.Unit != nil {
		current.Unit = *req.Unit
	}
	if req.Cadence != nil {
		current.Cadence = domain.ParseCadence(*req.Cadence)
	}

	if err := s.channelRepo.Update(ctx, current); err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			return nil, ErrChannelNotFound
		}
		s.logger.Error("Update: repository error for channel id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated channel %s (capacity=%d)", id, current.TotalCapacity)
	s.invalidator.InvalidateCalendars(ctx)

	return models.FromDomainChannel(current), nil
}

// Delete удаляет канал. Канал, на который ссылаются бронирования
// (аудио-таргет или ads-in-esend), удалить нельзя.
func (s *Service) Delete(ctx context.Context, id string) error {
	count, err := s.bookingRepo.CountByChannel(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings for channel id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - count bookings: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: channel id=%s has %d bookings, refusing to delete", id, count)
		return fmt.Errorf("%w: %d bookings reference channel %s", ErrChannelInUse, count, id)
	}

	if err := s.channelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			s.logger.Warn("Delete: channel id=%s not found", id)
			return ErrChannelNotFound
		}
		s.logger.Error("Delete: repository error for channel id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted channel id=%s", id)
	s.invalidator.InvalidateCalendars(ctx)
	return nil
}

func validateCreate(req *models.CreateChannelRequest) error {
	if req.ID == "" {
		return fmt.Errorf("%w: channel id is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: channel name is required", ErrInvalidInput)
	}
	if !domain.ChannelType(req.Type).Valid() {
		return fmt.Errorf("%w: unknown channel type %q", ErrInvalidInput, req.Type)
	}
	if req.TotalCapacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative", ErrInvalidInput)
	}
	return nil
}

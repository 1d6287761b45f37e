package models

import (
	"time"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// Request модели

// CreateChannelRequest запрос на создание канала
type CreateChannelRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	TotalCapacity int    `json:"totalCapacity"`
	Unit          string `json:"unit"`
	Cadence       string `json:"cadence,omitempty"` // "fri", "mon,tue,wed"; пусто - каждый день
}

// ToDomain конвертирует request в domain модель
func (r *CreateChannelRequest) ToDomain() *domain.Channel {
	return &domain.Channel{
		ID:            r.ID,
		Name:          r.Name,
		Type:          domain.ChannelType(r.Type),
		TotalCapacity: r.TotalCapacity,
		Unit:          r.Unit,
		Cadence:       domain.ParseCadence(r.Cadence),
	}
}

// UpdateChannelRequest запрос на обновление канала. Nil-поля не меняются.
type UpdateChannelRequest struct {
	Name          *string `json:"name,omitempty"`
	TotalCapacity *int    `json:"totalCapacity,omitempty"`
	Unit          *string `json:"unit,omitempty"`
	Cadence       *string `json:"cadence,omitempty"`
}

// Response модели

// ChannelResponse ответ с данными канала
type ChannelResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	TotalCapacity int       `json:"totalCapacity"`
	Unit          string    `json:"unit"`
	Cadence       string    `json:"cadence,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ChannelListResponse ответ со списком каналов
type ChannelListResponse struct {
	Channels []ChannelResponse `json:"channels"`
}

// Методы конвертации

// FromDomainChannel конвертирует domain модель в DTO
func FromDomainChannel(ch *domain.Channel) *ChannelResponse {
	if ch == nil {
		return nil
	}
	return &ChannelResponse{
		ID:            ch.ID,
		Name:          ch.Name,
		Type:          string(ch.Type),
		TotalCapacity: ch.TotalCapacity,
		Unit:          ch.Unit,
		Cadence:       ch.Cadence.String(),
		CreatedAt:     ch.CreatedAt,
		UpdatedAt:     ch.UpdatedAt,
	}
}

// FromDomainChannelList конвертирует список domain моделей в DTO
func FromDomainChannelList(channels []*domain.Channel) *ChannelListResponse {
	resp := &ChannelListResponse{
		Channels: make([]ChannelResponse, 0, len(channels)),
	}
	for _, ch := range channels {
		if dto := FromDomainChannel(ch); dto != nil {
			resp.Channels = append(resp.Channels, *dto)
		}
	}
	return resp
}

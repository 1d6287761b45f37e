package models

import (
	"errors"
	"time"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidType возвращается при некорректном типе бронирования
	ErrInvalidType = errors.New("invalid booking type")

	// ErrInvalidDepartment возвращается при некорректном департаменте
	ErrInvalidDepartment = errors.New("invalid department")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status     *string `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	Type       *string `json:"type,omitempty"`       // Фильтр по типу (опционально)
	Department *string `json:"department,omitempty"` // Фильтр по департаменту (опционально)

	// From/To отбирают бронирования, пересекающиеся с окном дат
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if r.Type != nil {
		t := domain.ChannelType(*r.Type)
		if !t.Valid() {
			return filter, ErrInvalidType
		}
		filter.Type = &t
	}
	if r.Department != nil {
		d := domain.Department(*r.Department)
		if !d.Valid() {
			return filter, ErrInvalidDepartment
		}
		filter.Department = &d
	}
	if r.From != nil {
		from, err := types.NewDateStringFromString(*r.From)
		if err != nil {
			return filter, err
		}
		filter.OverlapStart = &from
	}
	if r.To != nil {
		to, err := types.NewDateStringFromString(*r.To)
		if err != nil {
			return filter, err
		}
		filter.OverlapEnd = &to
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string `json:"id"`
	ClientName   string `json:"clientName"`
	CampaignName string `json:"campaignName"`
	StartDate    string `json:"startDate"` // "2025-10-15"
	EndDate      string `json:"endDate"`
	BookingType  string `json:"bookingType"`
	Department   string `json:"department"`
	Status       string `json:"status"`

	AudioTargetID      *string `json:"audioTargetId,omitempty"`
	AudioSpots         int     `json:"audioSpots,omitempty"`
	DisplayImpressions int     `json:"displayImpressions,omitempty"`

	EmailDates      []string `json:"emailDates,omitempty"`
	TargetChannelID *string  `json:"targetChannelId,omitempty"`
	TargetListIDs   []string `json:"targetListIds,omitempty"`

	AdditionalDetails map[string]interface{} `json:"additionalDetails,omitempty"`

	ContractNumber *string `json:"contractNumber,omitempty"`
	BookerName     *string `json:"bookerName,omitempty"`
	GeoTarget      *string `json:"geoTarget,omitempty"`

	IsBlocked bool `json:"isBlocked,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ClientName:         b.ClientName,
		CampaignName:       b.CampaignName,
		StartDate:          b.StartDate.String(),
		EndDate:            b.EndDate.String(),
		BookingType:        string(b.BookingType),
		Department:         string(b.Department),
		Status:             string(b.Status),
		AudioTargetID:      b.AudioTargetID,
		AudioSpots:         b.AudioSpots,
		DisplayImpressions: b.DisplayImpressions,
		TargetChannelID:    b.TargetChannelID,
		TargetListIDs:      b.TargetListIDs,
		AdditionalDetails:  b.AdditionalDetails,
		ContractNumber:     b.ContractNumber,
		BookerName:         b.BookerName,
		GeoTarget:          b.GeoTarget,
		IsBlocked:          b.IsBlocked,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if len(b.EmailDates) > 0 {
		resp.EmailDates = make([]string, len(b.EmailDates))
		for i, d := range b.EmailDates {
			resp.EmailDates[i] = d.String()
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

package update_booking

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/service/bookings/models"
	updateBooking "github.com/premiermedia/AdBookingService/internal/usecase/update_booking"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateBookingRequest struct {
	ClientName   *string `json:"clientName,omitempty"`
	CampaignName *string `json:"campaignName,omitempty"`
	Department   *string `json:"department,omitempty"`
	Status       *string `json:"status,omitempty"`

	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`

	AudioTargetID      *string `json:"audioTargetId,omitempty"`
	AudioSpots         *int    `json:"audioSpots,omitempty"`
	DisplayImpressions *int    `json:"displayImpressions,omitempty"`

	EmailDates      []string `json:"emailDates,omitempty"`
	TargetChannelID *string  `json:"targetChannelId,omitempty"`
	TargetListIDs   []string `json:"targetListIds,omitempty"`

	AdditionalDetails map[string]interface{} `json:"additionalDetails,omitempty"`

	ContractNumber *string `json:"contractNumber,omitempty"`
	BookerName     *string `json:"bookerName,omitempty"`
	GeoTarget      *string `json:"geoTarget,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id string) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		ID:                 id,
		ClientName:         r.ClientName,
		CampaignName:       r.CampaignName,
		AudioTargetID:      r.AudioTargetID,
		AudioSpots:         r.AudioSpots,
		DisplayImpressions: r.DisplayImpressions,
		TargetChannelID:    r.TargetChannelID,
		TargetListIDs:      r.TargetListIDs,
		AdditionalDetails:  r.AdditionalDetails,
		ContractNumber:     r.ContractNumber,
		BookerName:         r.BookerName,
		GeoTarget:          r.GeoTarget,
	}

	if r.Department != nil {
		d := domain.Department(*r.Department)
		req.Department = &d
	}
	if r.Status != nil {
		s := domain.BookingStatus(*r.Status)
		req.Status = &s
	}
	if r.StartDate != nil {
		d, err := types.NewDateStringFromString(*r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := types.NewDateStringFromString(*r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &d
	}
	for _, d := range r.EmailDates {
		date, err := types.NewDateStringFromString(d)
		if err != nil {
			return nil, err
		}
		req.EmailDates = append(req.EmailDates, date)
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}

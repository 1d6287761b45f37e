package create_booking

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/service/bookings/models"
	createBooking "github.com/premiermedia/AdBookingService/internal/usecase/create_booking"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName   string `json:"clientName"`
	CampaignName string `json:"campaignName"`
	BookingType  string `json:"bookingType"`
	Department   string `json:"department,omitempty"`

	StartDate string `json:"startDate,omitempty"` // "2025-10-15"
	EndDate   string `json:"endDate,omitempty"`

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

	Draft bool `json:"draft,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		ClientName:         r.ClientName,
		CampaignName:       r.CampaignName,
		BookingType:        domain.ChannelType(r.BookingType),
		Department:         domain.Department(r.Department),
		StartDate:          types.DateString(r.StartDate),
		EndDate:            types.DateString(r.EndDate),
		AudioTargetID:      r.AudioTargetID,
		AudioSpots:         r.AudioSpots,
		DisplayImpressions: r.DisplayImpressions,
		TargetChannelID:    r.TargetChannelID,
		TargetListIDs:      r.TargetListIDs,
		AdditionalDetails:  r.AdditionalDetails,
		ContractNumber:     r.ContractNumber,
		BookerName:         r.BookerName,
		GeoTarget:          r.GeoTarget,
		Draft:              r.Draft,
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
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}

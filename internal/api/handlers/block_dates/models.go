package block_dates

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/service/bookings/models"
	blockDates "github.com/premiermedia/AdBookingService/internal/usecase/block_dates"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// BlockDatesRequest HTTP request model
type BlockDatesRequest struct {
	Type            string   `json:"type"`
	Dates           []string `json:"dates"`
	Reason          string   `json:"reason"`
	TargetChannelID *string  `json:"targetChannelId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockDatesRequest) ToUseCaseRequest() (*blockDates.Request, error) {
	req := &blockDates.Request{
		Type:            domain.ChannelType(r.Type),
		Reason:          r.Reason,
		TargetChannelID: r.TargetChannelID,
	}
	for _, d := range r.Dates {
		date, err := types.NewDateStringFromString(d)
		if err != nil {
			return nil, err
		}
		req.Dates = append(req.Dates, date)
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockDates.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}

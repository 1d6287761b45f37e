package update_booking

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// Request модель запроса редактирования бронирования. Nil-поля не меняются;
// срезы и даты заменяются целиком, если переданы.
type Request struct {
	ID string

	ClientName   *string
	CampaignName *string

	Department *domain.Department
	Status     *domain.BookingStatus

	StartDate *types.DateString
	EndDate   *types.DateString

	AudioTargetID      *string
	AudioSpots         *int
	DisplayImpressions *int

	EmailDates      []types.DateString
	TargetChannelID *string
	TargetListIDs   []string

	AdditionalDetails map[string]interface{}

	ContractNumber *string
	BookerName     *string
	GeoTarget      *string
}

// Response модель ответа редактирования бронирования
type Response struct {
	Booking *domain.Booking
}

package create_booking

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// Request модель запроса создания бронирования
type Request struct {
	ClientName   string
	CampaignName string

	BookingType domain.ChannelType

	// Department по умолчанию SALES, если не задан
	Department domain.Department

	// StartDate/EndDate задают flight-диапазон для AUDIO/DISPLAY.
	// Для email-типов диапазон выводится из EmailDates и входные
	// значения игнорируются.
	StartDate types.DateString
	EndDate   types.DateString

	AudioTargetID      *string
	AudioSpots         int
	DisplayImpressions int

	EmailDates      []types.DateString
	TargetChannelID *string
	TargetListIDs   []string

	AdditionalDetails map[string]interface{}

	ContractNumber *string
	BookerName     *string
	GeoTarget      *string

	// Draft создает черновик вместо подтвержденного бронирования.
	// Черновики не потребляют емкость и не проходят проверку правил.
	Draft bool
}

// Response модель ответа создания бронирования
type Response struct {
	Booking *domain.Booking
}

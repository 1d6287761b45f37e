package notify

import (
	"time"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// BookingEvent снимок подтвержденного бронирования, публикуемый в очередь.
// Содержит только данные, нужные потребителям (письма, интеграции),
// без внутренних полей доменной модели.
type BookingEvent struct {
	BookingID    string   `json:"bookingId"`
	ClientName   string   `json:"clientName"`
	CampaignName string   `json:"campaignName"`
	BookingType  string   `json:"bookingType"`
	Department   string   `json:"department"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	EmailDates   []string `json:"emailDates,omitempty"`
	BookerName   *string  `json:"bookerName,omitempty"`

	OccurredAt time.Time `json:"occurredAt"`
}

// NewBookingEvent строит событие из доменной модели
func NewBookingEvent(b *domain.Booking) *BookingEvent {
	event := &BookingEvent{
		BookingID:    b.ID,
		ClientName:   b.ClientName,
		CampaignName: b.CampaignName,
		BookingType:  string(b.BookingType),
		Department:   string(b.Department),
		StartDate:    b.StartDate.String(),
		EndDate:      b.EndDate.String(),
		BookerName:   b.BookerName,
		OccurredAt:   time.Now().UTC(),
	}
	for _, d := range b.EmailDates {
		event.EmailDates = append(event.EmailDates, d.String())
	}
	return event
}

package get_calendar

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	monthlyCalendar "github.com/premiermedia/AdBookingService/internal/usecase/monthly_calendar"
)

// CalendarResponse HTTP response model: день месяца -> доступность
type CalendarResponse struct {
	Type     string                         `json:"type"`
	Year     int                            `json:"year"`
	Month    int                            `json:"month"`
	TargetID *string                        `json:"targetId,omitempty"`
	Days     map[int]domain.DayAvailability `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *monthlyCalendar.Response) *CalendarResponse {
	return &CalendarResponse{
		Type:     string(resp.Type),
		Year:     resp.Year,
		Month:    int(resp.Month),
		TargetID: resp.TargetID,
		Days:     resp.Days,
	}
}

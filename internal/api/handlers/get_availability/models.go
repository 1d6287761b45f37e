package get_availability

import (
	checkAvailability "github.com/premiermedia/AdBookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model. Available может быть
// отрицательным - это сигнал перебронирования.
type AvailabilityResponse struct {
	Type      string  `json:"type"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	TargetID  *string `json:"targetId,omitempty"`
	Capacity  int     `json:"capacity"`
	Used      int     `json:"used"`
	Available int     `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Type:      string(resp.Type),
		Start:     resp.Start.String(),
		End:       resp.End.String(),
		TargetID:  resp.TargetID,
		Capacity:  resp.Capacity,
		Used:      resp.Used,
		Available: resp.Available,
	}
}

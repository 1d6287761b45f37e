package create_booking

import (
	"fmt"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// validateRequest проверяет структурную корректность запроса.
// Бизнес-правила bespoke-рассылок проверяются валидатором внутри транзакции.
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if req.CampaignName == "" {
		return fmt.Errorf("%w: campaign name is required", ErrInvalidInput)
	}
	if !req.BookingType.Valid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.BookingType)
	}
	if req.Department != "" && !req.Department.Valid() {
		return fmt.Errorf("%w: unknown department %q", ErrInvalidInput, req.Department)
	}

	if req.BookingType.IsEmail() {
		if len(req.EmailDates) == 0 {
			return fmt.Errorf("%w: email booking requires at least one send date", ErrInvalidInput)
		}
		for _, d := range req.EmailDates {
			if err := d.Validate(); err != nil {
				return fmt.Errorf("%w: email date: %v", ErrInvalidInput, err)
			}
		}
		if req.BookingType == domain.TypeAdsInESend && req.TargetChannelID == nil {
			return fmt.Errorf("%w: ads-in-esend booking requires a target channel", ErrInvalidInput)
		}
		return nil
	}

	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: start date: %v", ErrInvalidInput, err)
	}
	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: end date: %v", ErrInvalidInput, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	switch req.BookingType {
	case domain.TypeAudio:
		if req.AudioSpots <= 0 {
			return fmt.Errorf("%w: audio booking requires a positive spot count", ErrInvalidInput)
		}
	case domain.TypeDisplay:
		if req.DisplayImpressions <= 0 {
			return fmt.Errorf("%w: display booking requires a positive impression count", ErrInvalidInput)
		}
	}

	return nil
}

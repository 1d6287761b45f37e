package block_dates

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// Request модель запроса административной блокировки дат
type Request struct {
	// Type тип блокируемого инвентаря (обычно BESPOKE_ESEND)
	Type domain.ChannelType

	// Dates блокируемые даты
	Dates []types.DateString

	// Reason причина блокировки, сохраняется как название кампании
	Reason string

	// TargetChannelID канал, чьи даты блокируются.
	// Обязателен для ADS_IN_ESEND, иначе опционален.
	TargetChannelID *string
}

// Response модель ответа блокировки дат
type Response struct {
	Booking *domain.Booking
}

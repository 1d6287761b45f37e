package check_availability

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// Request модель запроса доступности на диапазоне дат
type Request struct {
	Type     domain.ChannelType
	Start    types.DateString
	End      types.DateString
	TargetID *string // опционально: конкретный канал вместо агрегата по типу
}

// Response результат расчета доступности.
// Available может быть отрицательным - это сигнал перебронирования,
// на этом слое значение не обрезается.
type Response struct {
	Type      domain.ChannelType
	Start     types.DateString
	End       types.DateString
	TargetID  *string
	Capacity  int
	Used      int
	Available int
}

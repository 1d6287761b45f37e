package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/domain"
	monthlyCalendar "github.com/premiermedia/AdBookingService/internal/usecase/monthly_calendar"
)

const (
	msgMissingParams = "type, year and month query parameters are required"
	msgInvalidParams = "invalid query parameters"
)

type Handler struct {
	useCase MonthlyCalendarUseCase
	logger  Logger
}

func NewHandler(useCase MonthlyCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/calendar
// Query-параметры: type, year, month, targetId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	channelType := query.Get("type")
	yearStr := query.Get("year")
	monthStr := query.Get("month")
	if channelType == "" || yearStr == "" || monthStr == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &monthlyCalendar.Request{
		Type:  domain.ChannelType(channelType),
		Year:  year,
		Month: time.Month(month),
	}
	if target := query.Get("targetId"); target != "" {
		req.TargetID = &target
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, monthlyCalendar.ErrInvalidInput):
			h.logger.Warn("GET /availability/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /availability/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

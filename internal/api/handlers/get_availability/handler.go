package get_availability

import (
	"errors"
	"net/http"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/domain"
	checkAvailability "github.com/premiermedia/AdBookingService/internal/usecase/check_availability"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

const (
	msgMissingParams = "type, start and end query parameters are required"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput  = "invalid query parameters"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query-параметры: type, start, end, targetId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	channelType := query.Get("type")
	startStr := query.Get("start")
	endStr := query.Get("end")
	if channelType == "" || startStr == "" || endStr == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	start, err := types.NewDateStringFromString(startStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := types.NewDateStringFromString(endStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &checkAvailability.Request{
		Type:  domain.ChannelType(channelType),
		Start: start,
		End:   end,
	}
	if target := query.Get("targetId"); target != "" {
		req.TargetID = &target
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

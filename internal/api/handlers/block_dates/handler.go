package block_dates

import (
	"errors"
	"net/http"
	"strings"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	blockDates "github.com/premiermedia/AdBookingService/internal/usecase/block_dates"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase BlockDatesUseCase
	logger  Logger
}

func NewHandler(useCase BlockDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockDates.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, inputMessage(err))
		default:
			h.logger.Error("POST /admin/blocks - Failed to block dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks - Dates blocked: booking_id=%s, dates=%d",
		result.Booking.ID, len(req.Dates))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func inputMessage(err error) string {
	return strings.TrimPrefix(err.Error(), blockDates.ErrInvalidInput.Error()+": ")
}

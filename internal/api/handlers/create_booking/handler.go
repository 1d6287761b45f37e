package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	createBooking "github.com/premiermedia/AdBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRuleViolation):
			// Текст нарушенного правила показывается пользователю как есть
			h.logger.Warn("POST /bookings - Rule violated: client=%s: %v", req.ClientName, err)
			handlers.RespondUnprocessable(w, ruleMessage(err))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client=%s: %v", req.ClientName, err)
			handlers.RespondBadRequest(w, inputMessage(err))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client=%s, error=%v",
				req.ClientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, client=%s",
		result.Booking.ID, req.ClientName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// ruleMessage отрезает sentinel-префикс, оставляя текст правила
func ruleMessage(err error) string {
	return strings.TrimPrefix(err.Error(), createBooking.ErrRuleViolation.Error()+": ")
}

func inputMessage(err error) string {
	return strings.TrimPrefix(err.Error(), createBooking.ErrInvalidInput.Error()+": ")
}

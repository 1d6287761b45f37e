package update_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	updateBooking "github.com/premiermedia/AdBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "booking id is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgNotFound           = "booking not found"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking id=%s not found", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrRuleViolation):
			h.logger.Warn("PUT /bookings/{id} - Rule violated: id=%s: %v", id, err)
			handlers.RespondUnprocessable(w, ruleMessage(err))

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: id=%s: %v", id, err)
			handlers.RespondBadRequest(w, inputMessage(err))

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func ruleMessage(err error) string {
	return strings.TrimPrefix(err.Error(), updateBooking.ErrRuleViolation.Error()+": ")
}

func inputMessage(err error) string {
	return strings.TrimPrefix(err.Error(), updateBooking.ErrInvalidInput.Error()+": ")
}

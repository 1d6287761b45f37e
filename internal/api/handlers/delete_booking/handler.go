package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "booking id is required"
	msgNotFound         = "booking not found"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: booking_id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

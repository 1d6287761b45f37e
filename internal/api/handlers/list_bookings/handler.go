package list_bookings

import (
	"errors"
	"net/http"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/service/bookings"
	"github.com/premiermedia/AdBookingService/internal/service/bookings/models"
)

const msgInvalidFilter = "invalid filter parameters"

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

// Handle GET /api/v1/bookings
// Query-параметры: status, type, department, from, to
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{
		Status:     optionalQuery(r, "status"),
		Type:       optionalQuery(r, "type"),
		Department: optionalQuery(r, "department"),
		From:       optionalQuery(r, "from"),
		To:         optionalQuery(r, "to"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func optionalQuery(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

package get_channel

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/service/inventory"
)

const (
	msgInvalidChannelID = "channel id is required"
	msgNotFound         = "channel not found"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/channels/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidChannelID)
		return
	}

	channel, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrChannelNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /channels/{id} - Failed to get channel id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, channel)
}

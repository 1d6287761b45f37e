package delete_channel

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
	msgInUse            = "channel is referenced by bookings and cannot be deleted"
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

// Handle DELETE /api/v1/channels/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidChannelID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, inventory.ErrChannelNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, inventory.ErrChannelInUse):
			h.logger.Warn("DELETE /channels/{id} - Channel id=%s in use", id)
			handlers.RespondConflict(w, msgInUse)
		default:
			h.logger.Error("DELETE /channels/{id} - Failed to delete channel id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /channels/{id} - Channel deleted: channel_id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

package update_channel

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/service/inventory"
	"github.com/premiermedia/AdBookingService/internal/service/inventory/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidChannelID   = "channel id is required"
	msgInvalidInput       = "invalid channel data"
	msgNotFound           = "channel not found"
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

// Handle PUT /api/v1/channels/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidChannelID)
		return
	}

	var req models.UpdateChannelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /channels/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrChannelNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, inventory.ErrInvalidInput):
			h.logger.Warn("PUT /channels/{id} - Invalid input: id=%s: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /channels/{id} - Failed to update channel id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /channels/{id} - Channel updated: channel_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

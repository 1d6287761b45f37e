package create_channel

import (
	"errors"
	"net/http"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/service/inventory"
	"github.com/premiermedia/AdBookingService/internal/service/inventory/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid channel data"
	msgAlreadyExists      = "channel with this id already exists"
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

// Handle POST /api/v1/channels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChannelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /channels - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrChannelExists):
			h.logger.Warn("POST /channels - Channel id=%s already exists", req.ID)
			handlers.RespondConflict(w, msgAlreadyExists)
		case errors.Is(err, inventory.ErrInvalidInput):
			h.logger.Warn("POST /channels - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /channels - Failed to create channel id=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /channels - Channel created: channel_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

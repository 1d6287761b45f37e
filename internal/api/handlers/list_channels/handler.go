package list_channels

import (
	"errors"
	"net/http"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
	"github.com/premiermedia/AdBookingService/internal/service/inventory"
)

const msgInvalidType = "unknown channel type"

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

// Handle GET /api/v1/channels
// Query-параметры: type (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var typeFilter *string
	if t := r.URL.Query().Get("type"); t != "" {
		typeFilter = &t
	}

	result, err := h.service.List(r.Context(), typeFilter)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidType)
		default:
			h.logger.Error("GET /channels - Failed to list channels: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package update_channel

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/service/inventory/models"
)

type InventoryService interface {
	Update(ctx context.Context, id string, req *models.UpdateChannelRequest) (*models.ChannelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_channel

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/service/inventory/models"
)

type InventoryService interface {
	GetByID(ctx context.Context, id string) (*models.ChannelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

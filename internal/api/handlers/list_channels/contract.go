package list_channels

import (
	"context"

	"github.com/premiermedia/AdBookingService/internal/service/inventory/models"
)

type InventoryService interface {
	List(ctx context.Context, channelType *string) (*models.ChannelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

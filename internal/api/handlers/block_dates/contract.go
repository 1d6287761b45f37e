package block_dates

import (
	"context"

	blockDates "github.com/premiermedia/AdBookingService/internal/usecase/block_dates"
)

type BlockDatesUseCase interface {
	Execute(ctx context.Context, req *blockDates.Request) (*blockDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

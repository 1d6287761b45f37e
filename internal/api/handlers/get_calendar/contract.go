package get_calendar

import (
	"context"

	monthlyCalendar "github.com/premiermedia/AdBookingService/internal/usecase/monthly_calendar"
)

type MonthlyCalendarUseCase interface {
	Execute(ctx context.Context, req *monthlyCalendar.Request) (*monthlyCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

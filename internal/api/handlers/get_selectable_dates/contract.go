package get_selectable_dates

import (
	"context"

	getAvailableSlots "github.com/hospital/turns-service/internal/usecase/get_available_slots"
)

type SelectableDatesUseCase interface {
	SelectableDates(ctx context.Context, resolver getAvailableSlots.Resolver, req *getAvailableSlots.DatesRequest) (*getAvailableSlots.DatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

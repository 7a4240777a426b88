package reschedule_turn

import (
	"context"

	rescheduleTurn "github.com/hospital/turns-service/internal/usecase/reschedule_turn"
)

type RescheduleUseCase interface {
	Execute(ctx context.Context, resolver rescheduleTurn.Resolver, req *rescheduleTurn.Request) (*rescheduleTurn.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

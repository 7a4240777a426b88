package prepare_reschedule

import (
	"context"

	rescheduleTurn "github.com/hospital/turns-service/internal/usecase/reschedule_turn"
)

type RescheduleUseCase interface {
	Prepare(ctx context.Context, resolver rescheduleTurn.Resolver, req *rescheduleTurn.PrepareRequest) (*rescheduleTurn.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package transition_turn_state

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

type TurnService interface {
	TransitionState(ctx context.Context, turnID uuid.UUID, to domain.TurnState) (*domain.Turn, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

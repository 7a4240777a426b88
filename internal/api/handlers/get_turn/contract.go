package get_turn

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

type TurnService interface {
	GetByID(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

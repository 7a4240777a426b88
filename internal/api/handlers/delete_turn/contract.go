package delete_turn

import (
	"context"

	"github.com/google/uuid"
)

type TurnService interface {
	Delete(ctx context.Context, turnID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_slot_config

import (
	"context"

	"github.com/google/uuid"
)

type SlotConfigService interface {
	Delete(ctx context.Context, specialtyID *uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_slot_config

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/service/slotconfig/models"
)

type SlotConfigService interface {
	Get(ctx context.Context, specialtyID uuid.UUID) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

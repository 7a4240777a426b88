package list_slot_configs

import (
	"context"

	"github.com/hospital/turns-service/internal/service/slotconfig/models"
)

type SlotConfigService interface {
	GetAll(ctx context.Context) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_slot_config

import (
	"context"

	"github.com/hospital/turns-service/internal/service/slotconfig/models"
)

type SlotConfigService interface {
	Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

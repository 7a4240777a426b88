package create_turn

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/internal/integrations/appointmentstore"
	"github.com/hospital/turns-service/pkg/types"
)

// AppointmentStore интерфейс внешнего хранилища талонов
type AppointmentStore interface {
	CreateTurn(ctx context.Context, payload *domain.TurnPayload) (*appointmentstore.CreatedTurn, error)
}

// Resolver резолвер доступности сессии вызывающего
type Resolver interface {
	Revalidate(ctx context.Context, specialtyID uuid.UUID, date time.Time, t types.TimeString) error
	Invalidate(ctx context.Context, specialtyID uuid.UUID, date time.Time, t types.TimeString) *domain.StaleSlotError
}

// Metrics метрики создания талонов
type Metrics interface {
	IncStaleSlot()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncStaleSlot() {}

package reschedule_turn

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/internal/integrations/appointmentstore"
	"github.com/hospital/turns-service/pkg/types"
)

// AppointmentStore интерфейс внешнего хранилища талонов
type AppointmentStore interface {
	GetTurnByID(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error)
	RescheduleTurn(ctx context.Context, req *domain.RescheduleRequest) (*appointmentstore.RescheduledTurn, error)
}

// Resolver резолвер доступности сессии вызывающего
type Resolver interface {
	Refresh(ctx context.Context, specialtyID uuid.UUID) (*availability.Snapshot, error)
	SelectableDatePredicate(specialtyID uuid.UUID) func(date time.Time) bool
	SelectDate(ctx context.Context, specialtyID uuid.UUID, date time.Time) ([]types.TimeString, error)
	Revalidate(ctx context.Context, specialtyID uuid.UUID, date time.Time, t types.TimeString) error
	Invalidate(ctx context.Context, specialtyID uuid.UUID, date time.Time, t types.TimeString) *domain.StaleSlotError
}

// Metrics метрики переноса
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

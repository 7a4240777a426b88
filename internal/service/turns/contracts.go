package turns

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// AppointmentStore интерфейс внешнего хранилища талонов
type AppointmentStore interface {
	GetTurnByID(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error)
	UpdateTurnState(ctx context.Context, turnID uuid.UUID, state domain.TurnState) error
	DeleteTurn(ctx context.Context, turnID uuid.UUID) error
}

// Metrics метрики переходов состояний
type Metrics interface {
	IncIllegalTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncIllegalTransition(string, string) {}

package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/pkg/types"
)

// Resolver резолвер доступности сессии вызывающего
type Resolver interface {
	Load(ctx context.Context, specialtyID uuid.UUID) (*availability.Snapshot, error)
	SelectableDatePredicate(specialtyID uuid.UUID) func(date time.Time) bool
	SelectDate(ctx context.Context, specialtyID uuid.UUID, date time.Time) ([]types.TimeString, error)
	Now() time.Time
	Date(date time.Time) time.Time
}

// DayNames названия дней недели для показа пользователю
type DayNames interface {
	DayName(date time.Time) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

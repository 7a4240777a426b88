package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// Catalog источник окон расписания специальности
type Catalog interface {
	// GetAvailableWindows date - подсказка, каталог может ее игнорировать
	GetAvailableWindows(ctx context.Context, specialtyID uuid.UUID, date *time.Time) ([]domain.ScheduleWindow, error)
}

// SlotConfigSource источник настроек генерации слотов
type SlotConfigSource interface {
	GetEffective(ctx context.Context, specialtyID uuid.UUID) (*domain.SpecialtySlotsConfig, error)
}

// Metrics метрики резолвера
type Metrics interface {
	ObserveCatalogFetch(success bool)
	IncCatalogFetchCoalesced()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) ObserveCatalogFetch(bool)  {}
func (noopMetrics) IncCatalogFetchCoalesced() {}

package sessions

import "github.com/hospital/turns-service/internal/availability"

// ResolverFactory создает новый резолвер для сессии
type ResolverFactory func() *availability.Resolver

// Metrics метрики реестра сессий
type Metrics interface {
	SetResolverSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) SetResolverSessions(int) {}

package slotconfig

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// ConfigRepository интерфейс репозитория настроек слотов
type ConfigRepository interface {
	GetBySpecialty(ctx context.Context, specialtyID *uuid.UUID) (*domain.SpecialtySlotsConfig, error)
	GetConfigWithHierarchy(ctx context.Context, specialtyID uuid.UUID) (*domain.SpecialtySlotsConfig, error)
	GetAll(ctx context.Context) ([]*domain.SpecialtySlotsConfig, error)
	Upsert(ctx context.Context, config *domain.SpecialtySlotsConfig) (*domain.SpecialtySlotsConfig, error)
	Delete(ctx context.Context, specialtyID *uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

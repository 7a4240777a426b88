package slotconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	configRepo "github.com/hospital/turns-service/internal/infra/storage/slotconfig"
	"github.com/hospital/turns-service/internal/service/slotconfig/models"
)

// Service сервис для работы с настройками генерации слотов
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetEffective действующая конфигурация специальности.
// Приоритет: специальность > глобальная > встроенные значения.
// Используется резолвером доступности.
func (s *Service) GetEffective(ctx context.Context, specialtyID uuid.UUID) (*domain.SpecialtySlotsConfig, error) {
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, specialtyID)
	if errors.Is(err, configRepo.ErrConfigNotFound) {
		return domain.DefaultSlotsConfig(), nil
	}
	if err != nil {
		s.logger.Error("GetEffective: repository error for specialty=%s: %v", specialtyID, err)
		return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}
	return config, nil
}

// Get действующая конфигурация специальности с указанием уровня
func (s *Service) Get(ctx context.Context, specialtyID uuid.UUID) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching slot config for specialty=%s", specialtyID)

	config, err := s.GetEffective(ctx, specialtyID)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainConfig(config)
	s.logger.Info("Get: specialty=%s uses interval=%d, advanceDays=%d (level: %s)",
		specialtyID, config.IntervalMinutes, config.AdvanceBookingDays, resp.Level)
	return resp, nil
}

// GetAll все сохраненные конфигурации, глобальная первой
func (s *Service) GetAll(ctx context.Context) (*models.ConfigListResponse, error) {
	configs, err := s.configRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainConfigList(configs), nil
}

// Upsert создает или заменяет конфигурацию специальности (или глобальную)
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: specialty=%s, interval=%d, advanceDays=%d",
		specialtyLabel(req.SpecialtyID), req.IntervalMinutes, req.AdvanceBookingDays)

	config := req.ToDomainConfig()
	if err := config.Validate(); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: saved config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// Delete удаляет конфигурацию; специальность вернется к глобальной или встроенной
func (s *Service) Delete(ctx context.Context, specialtyID *uuid.UUID) error {
	s.logger.Info("Delete: deleting slot config for specialty=%s", specialtyLabel(specialtyID))

	if err := s.configRepo.Delete(ctx, specialtyID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: no config for specialty=%s", specialtyLabel(specialtyID))
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func specialtyLabel(specialtyID *uuid.UUID) string {
	if specialtyID == nil {
		return "global"
	}
	return specialtyID.String()
}

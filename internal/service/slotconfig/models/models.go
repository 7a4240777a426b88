package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// Уровни, с которых взята действующая конфигурация
const (
	LevelSpecialty = "specialty"
	LevelGlobal    = "global"
	LevelDefault   = "default"
)

// UpsertConfigRequest запрос на создание или замену конфигурации.
// SpecialtyID = nil - глобальная конфигурация.
type UpsertConfigRequest struct {
	SpecialtyID        *uuid.UUID `json:"specialtyId,omitempty"`
	IntervalMinutes    int        `json:"intervalMinutes"`
	AdvanceBookingDays int        `json:"advanceBookingDays"` // 0 = без ограничений
}

// ConfigResponse ответ с данными конфигурации слотов
type ConfigResponse struct {
	ID                 int64      `json:"id,omitempty"`
	SpecialtyID        *uuid.UUID `json:"specialtyId,omitempty"`
	IntervalMinutes    int        `json:"intervalMinutes"`
	AdvanceBookingDays int        `json:"advanceBookingDays"`
	Level              string     `json:"level"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// ConfigListResponse ответ со списком конфигураций
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.SpecialtySlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                 c.ID,
		SpecialtyID:        c.SpecialtyID,
		IntervalMinutes:    c.IntervalMinutes,
		AdvanceBookingDays: c.AdvanceBookingDays,
		Level:              Level(c),
	}
	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.SpecialtySlotsConfig) *ConfigListResponse {
	resp := &ConfigListResponse{
		Configs: make([]ConfigResponse, 0, len(configs)),
	}
	for _, config := range configs {
		if configResp := FromDomainConfig(config); configResp != nil {
			resp.Configs = append(resp.Configs, *configResp)
		}
	}
	return resp
}

// ToDomainConfig конвертирует запрос в domain модель
func (r *UpsertConfigRequest) ToDomainConfig() *domain.SpecialtySlotsConfig {
	return &domain.SpecialtySlotsConfig{
		SpecialtyID:        r.SpecialtyID,
		IntervalMinutes:    r.IntervalMinutes,
		AdvanceBookingDays: r.AdvanceBookingDays,
	}
}

// Level уровень иерархии, которому принадлежит конфигурация
func Level(c *domain.SpecialtySlotsConfig) string {
	switch {
	case c.IsDefault():
		return LevelDefault
	case c.IsGlobalConfig():
		return LevelGlobal
	default:
		return LevelSpecialty
	}
}

package update_slot_config

import (
	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/service/slotconfig/models"
)

// UpdateSlotConfigRequest HTTP request model
type UpdateSlotConfigRequest struct {
	IntervalMinutes    int `json:"intervalMinutes"`
	AdvanceBookingDays int `json:"advanceBookingDays"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSlotConfigRequest) ToServiceRequest(specialtyID uuid.UUID) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		SpecialtyID:        &specialtyID,
		IntervalMinutes:    r.IntervalMinutes,
		AdvanceBookingDays: r.AdvanceBookingDays,
	}
}

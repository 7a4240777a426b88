package update_slot_config

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/service/slotconfig"
)

const (
	msgInvalidSpecialtyID = "некорректный ID специальности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные конфигурации"
)

type Handler struct {
	service SlotConfigService
	logger  Logger
}

func NewHandler(service SlotConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/specialties/{specialtyId}/slot-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := handlers.PathUUID(r, "specialtyId")
	if err != nil {
		h.logger.Warn("PUT /specialties/{id}/slot-config - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	var req UpdateSlotConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /specialties/{id}/slot-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(specialtyID))
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrInvalidInput):
			h.logger.Warn("PUT /specialties/{id}/slot-config - Invalid data: specialty_id=%s, error=%v",
				specialtyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /specialties/{id}/slot-config - Failed to update config: specialty_id=%s, error=%v",
				specialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /specialties/{id}/slot-config - Config saved: specialty_id=%s, config_id=%d",
		specialtyID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package delete_slot_config

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/service/slotconfig"
)

const (
	msgInvalidSpecialtyID = "некорректный ID специальности"
	msgNotFound           = "конфигурация не найдена"
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

// Handle DELETE /api/v1/specialties/{specialtyId}/slot-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := handlers.PathUUID(r, "specialtyId")
	if err != nil {
		h.logger.Warn("DELETE /specialties/{id}/slot-config - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	if err := h.service.Delete(r.Context(), &specialtyID); err != nil {
		if errors.Is(err, slotconfig.ErrConfigNotFound) {
			h.logger.Warn("DELETE /specialties/{id}/slot-config - Config not found: specialty_id=%s", specialtyID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /specialties/{id}/slot-config - Failed: specialty_id=%s, error=%v", specialtyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /specialties/{id}/slot-config - Config deleted: specialty_id=%s", specialtyID)
	w.WriteHeader(http.StatusNoContent)
}

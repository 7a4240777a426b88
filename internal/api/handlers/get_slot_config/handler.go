package get_slot_config

import (
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
)

const msgInvalidSpecialtyID = "некорректный ID специальности"

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

// Handle GET /api/v1/specialties/{specialtyId}/slot-config
// Всегда отвечает действующей конфигурацией: специальности, глобальной или встроенной.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := handlers.PathUUID(r, "specialtyId")
	if err != nil {
		h.logger.Warn("GET /specialties/{id}/slot-config - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	result, err := h.service.Get(r.Context(), specialtyID)
	if err != nil {
		h.logger.Error("GET /specialties/{id}/slot-config - Failed to get config: specialty_id=%s, error=%v",
			specialtyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /specialties/{id}/slot-config - specialty_id=%s, level=%s", specialtyID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_slot_configs

import (
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
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

// Handle GET /api/v1/slot-configs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /slot-configs - Failed to list configs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slot-configs - %d configs", len(result.Configs))
	handlers.RespondJSON(w, http.StatusOK, result)
}

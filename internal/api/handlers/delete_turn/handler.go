package delete_turn

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/domain"
)

const (
	msgInvalidTurnID = "некорректный ID талона"
	msgNotFound      = "талон не найден"
)

type Handler struct {
	service TurnService
	logger  Logger
}

func NewHandler(service TurnService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/turns/{turnId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turnID, err := handlers.PathUUID(r, "turnId")
	if err != nil {
		h.logger.Warn("DELETE /turns/{id} - Invalid turn ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnID)
		return
	}

	if err := h.service.Delete(r.Context(), turnID); err != nil {
		if errors.Is(err, domain.ErrTurnNotFound) {
			h.logger.Warn("DELETE /turns/{id} - Turn not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /turns/{id} - Failed to delete turn: turn_id=%s, error=%v", turnID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /turns/{id} - Turn deleted: turn_id=%s", turnID)
	w.WriteHeader(http.StatusNoContent)
}

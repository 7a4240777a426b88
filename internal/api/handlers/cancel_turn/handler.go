package cancel_turn

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/internal/service/turns"
)

const (
	msgInvalidTurnID = "некорректный ID талона"
	msgNotFound      = "талон не найден"
	msgCannotCancel  = "талон не может быть отменен"
	msgStoreConflict = "хранилище отклонило отмену"
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

// Handle PATCH /api/v1/turns/{turnId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turnID, err := handlers.PathUUID(r, "turnId")
	if err != nil {
		h.logger.Warn("PATCH /turns/{id}/cancel - Invalid turn ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnID)
		return
	}

	turn, err := h.service.Cancel(r.Context(), turnID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTurnNotFound):
			h.logger.Warn("PATCH /turns/{id}/cancel - Turn not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrIllegalTransition):
			h.logger.Warn("PATCH /turns/{id}/cancel - Cannot cancel: turn_id=%s, error=%v", turnID, err)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, turns.ErrStoreConflict):
			h.logger.Warn("PATCH /turns/{id}/cancel - Store conflict: turn_id=%s, error=%v", turnID, err)
			handlers.RespondConflict(w, msgStoreConflict)

		default:
			h.logger.Error("PATCH /turns/{id}/cancel - Failed to cancel turn: turn_id=%s, error=%v", turnID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /turns/{id}/cancel - Turn cancelled: turn_id=%s", turnID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainTurn(turn))
}

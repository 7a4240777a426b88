package transition_turn_state

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/internal/service/turns"
)

const (
	msgInvalidTurnID      = "некорректный ID талона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownState       = "неизвестное состояние талона"
	msgNotFound           = "талон не найден"
	msgIllegalTransition  = "переход между состояниями недопустим"
	msgStoreConflict      = "хранилище отклонило смену состояния"
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

// Handle PATCH /api/v1/turns/{turnId}/state
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turnID, err := handlers.PathUUID(r, "turnId")
	if err != nil {
		h.logger.Warn("PATCH /turns/{id}/state - Invalid turn ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnID)
		return
	}

	var req TransitionStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /turns/{id}/state - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	to, err := domain.ParseTurnState(req.State)
	if err != nil {
		h.logger.Warn("PATCH /turns/{id}/state - %v", err)
		handlers.RespondBadRequest(w, msgUnknownState)
		return
	}

	turn, err := h.service.TransitionState(r.Context(), turnID, to)
	if err != nil {
		var illegal *domain.IllegalTransitionError
		switch {
		case errors.As(err, &illegal):
			h.logger.Warn("PATCH /turns/{id}/state - Illegal transition: turn_id=%s, %s -> %s",
				turnID, illegal.From, illegal.To)
			handlers.RespondJSON(w, http.StatusConflict, IllegalTransitionResponse{
				Code:    http.StatusConflict,
				Message: msgIllegalTransition,
				From:    string(illegal.From),
				To:      string(illegal.To),
			})

		case errors.Is(err, domain.ErrTurnNotFound):
			h.logger.Warn("PATCH /turns/{id}/state - Turn not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, turns.ErrStoreConflict):
			h.logger.Warn("PATCH /turns/{id}/state - Store conflict: turn_id=%s, error=%v", turnID, err)
			handlers.RespondConflict(w, msgStoreConflict)

		default:
			h.logger.Error("PATCH /turns/{id}/state - Failed: turn_id=%s, error=%v", turnID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /turns/{id}/state - Turn moved: turn_id=%s, state=%s", turnID, turn.State)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainTurn(turn))
}

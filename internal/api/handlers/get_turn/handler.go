package get_turn

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

// TurnWithNextStates талон и состояния, в которые его можно перевести
type TurnWithNextStates struct {
	*handlers.TurnResponse
	NextStates []string `json:"nextStates"`
}

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

// Handle GET /api/v1/turns/{turnId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turnID, err := handlers.PathUUID(r, "turnId")
	if err != nil {
		h.logger.Warn("GET /turns/{id} - Invalid turn ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnID)
		return
	}

	turn, err := h.service.GetByID(r.Context(), turnID)
	if err != nil {
		if errors.Is(err, domain.ErrTurnNotFound) {
			h.logger.Warn("GET /turns/{id} - Turn not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /turns/{id} - Failed to get turn: turn_id=%s, error=%v", turnID, err)
		handlers.RespondInternalError(w)
		return
	}

	next := domain.NextStates(turn.State)
	nextStates := make([]string, len(next))
	for i, s := range next {
		nextStates[i] = string(s)
	}

	h.logger.Info("GET /turns/{id} - Turn retrieved: turn_id=%s, state=%s", turnID, turn.State)
	handlers.RespondJSON(w, http.StatusOK, TurnWithNextStates{
		TurnResponse: handlers.FromDomainTurn(turn),
		NextStates:   nextStates,
	})
}

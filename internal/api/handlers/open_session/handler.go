package open_session

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/api/handlers"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
}

type Handler struct {
	registry SessionRegistry
	logger   Logger
}

func NewHandler(registry SessionRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions
// Сессия держит свой резолвер: окна каталога загружаются один раз на специальность.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := h.registry.Create()

	h.logger.Info("POST /sessions - Session opened: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusCreated, SessionResponse{SessionID: sessionID})
}

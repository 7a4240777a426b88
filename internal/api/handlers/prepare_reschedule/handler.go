package prepare_reschedule

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/api/middleware"
	"github.com/hospital/turns-service/internal/domain"
	rescheduleTurn "github.com/hospital/turns-service/internal/usecase/reschedule_turn"
)

const (
	msgInvalidTurnID      = "некорректный ID талона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "талон не найден"
	msgNotReschedulable   = "талон в конечном состоянии, перенос невозможен"
	msgMissingSpecialty   = "не удалось определить специальность талона"
	msgSpecialtyNotFound  = "специальность не найдена"
	msgCatalogUnavailable = "расписание временно недоступно, повторите попытку"
)

type Handler struct {
	useCase RescheduleUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/turns/{turnId}/reschedule/prepare
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turnID, err := handlers.PathUUID(r, "turnId")
	if err != nil {
		h.logger.Warn("POST /turns/{id}/reschedule/prepare - Invalid turn ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnID)
		return
	}

	var req PrepareRescheduleRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /turns/{id}/reschedule/prepare - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	resolver, ok := middleware.GetResolver(r.Context())
	if !ok {
		h.logger.Error("POST /turns/{id}/reschedule/prepare - No resolver in request context")
		handlers.RespondInternalError(w)
		return
	}

	session, err := h.useCase.Prepare(r.Context(), resolver, &rescheduleTurn.PrepareRequest{
		TurnID:      turnID,
		SpecialtyID: req.SpecialtyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTurnNotFound):
			h.logger.Warn("POST /turns/{id}/reschedule/prepare - Turn not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrTurnNotReschedulable):
			h.logger.Warn("POST /turns/{id}/reschedule/prepare - Not reschedulable: turn_id=%s", turnID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, domain.ErrMissingSpecialtyContext):
			h.logger.Warn("POST /turns/{id}/reschedule/prepare - Missing specialty: turn_id=%s", turnID)
			handlers.RespondUnprocessable(w, msgMissingSpecialty)

		case errors.Is(err, domain.ErrSpecialtyNotFound):
			h.logger.Warn("POST /turns/{id}/reschedule/prepare - Specialty not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, domain.ErrCatalogUnavailable):
			h.logger.Warn("POST /turns/{id}/reschedule/prepare - Catalog unavailable: turn_id=%s", turnID)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		case errors.Is(err, rescheduleTurn.ErrInvalidInput):
			h.logger.Warn("POST /turns/{id}/reschedule/prepare - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /turns/{id}/reschedule/prepare - Failed: turn_id=%s, error=%v", turnID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turns/{id}/reschedule/prepare - Prepared: turn_id=%s, specialty_id=%s, slots=%d",
		turnID, session.SpecialtyID, len(session.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

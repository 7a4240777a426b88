package reschedule_turn

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
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "талон не найден"
	msgNotReschedulable   = "талон в конечном состоянии, перенос невозможен"
	msgMissingSpecialty   = "не удалось определить специальность талона"
	msgSpecialtyNotFound  = "специальность не найдена"
	msgCatalogUnavailable = "расписание временно недоступно, повторите попытку"
	msgInvalidReschedule  = "некорректные данные переноса"
	msgRejected           = "хранилище талонов отклонило перенос"
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

// Handle POST /api/v1/turns/{turnId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turnID, err := handlers.PathUUID(r, "turnId")
	if err != nil {
		h.logger.Warn("POST /turns/{id}/reschedule - Invalid turn ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnID)
		return
	}

	var req RescheduleTurnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turns/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(turnID)
	if err != nil {
		h.logger.Warn("POST /turns/{id}/reschedule - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	resolver, ok := middleware.GetResolver(r.Context())
	if !ok {
		h.logger.Error("POST /turns/{id}/reschedule - No resolver in request context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), resolver, useCaseReq)
	if err != nil {
		var stale *domain.StaleSlotError
		switch {
		case errors.As(err, &stale):
			h.logger.Warn("POST /turns/{id}/reschedule - Slot no longer offered: turn_id=%s, %s %s",
				turnID, req.Date, req.Time)
			handlers.RespondStaleSlot(w, stale)

		case errors.Is(err, domain.ErrTurnNotFound):
			h.logger.Warn("POST /turns/{id}/reschedule - Turn not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrTurnNotReschedulable):
			h.logger.Warn("POST /turns/{id}/reschedule - Not reschedulable: turn_id=%s", turnID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, domain.ErrMissingSpecialtyContext):
			h.logger.Warn("POST /turns/{id}/reschedule - Missing specialty: turn_id=%s", turnID)
			handlers.RespondUnprocessable(w, msgMissingSpecialty)

		case errors.Is(err, domain.ErrSpecialtyNotFound):
			h.logger.Warn("POST /turns/{id}/reschedule - Specialty not found: turn_id=%s", turnID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, domain.ErrCatalogUnavailable):
			h.logger.Warn("POST /turns/{id}/reschedule - Catalog unavailable: turn_id=%s", turnID)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		case errors.Is(err, rescheduleTurn.ErrInvalidInput), errors.Is(err, domain.ErrInvalidTurn):
			h.logger.Warn("POST /turns/{id}/reschedule - Invalid reschedule: turn_id=%s, error=%v", turnID, err)
			handlers.RespondBadRequest(w, msgInvalidReschedule)

		case errors.Is(err, rescheduleTurn.ErrRejected):
			h.logger.Warn("POST /turns/{id}/reschedule - Rejected by store: turn_id=%s, error=%v", turnID, err)
			handlers.RespondUnprocessable(w, msgRejected)

		default:
			h.logger.Error("POST /turns/{id}/reschedule - Failed: turn_id=%s, error=%v", turnID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turns/{id}/reschedule - Turn rescheduled: turn_id=%s, %s %s",
		turnID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, &RescheduleTurnResponse{
		Message: result.Message,
		Turn:    handlers.FromDomainTurn(result.Turn),
	})
}

package create_turn

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/api/middleware"
	"github.com/hospital/turns-service/internal/domain"
	createTurn "github.com/hospital/turns-service/internal/usecase/create_turn"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidTurn        = "некорректные данные талона"
	msgSpecialtyNotFound  = "специальность не найдена"
	msgCatalogUnavailable = "расписание временно недоступно, повторите попытку"
	msgRejected           = "хранилище талонов отклонило запрос"
)

type Handler struct {
	useCase CreateTurnUseCase
	logger  Logger
}

func NewHandler(useCase CreateTurnUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/turns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /turns - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTurnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turns - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /turns - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	resolver, ok := middleware.GetResolver(r.Context())
	if !ok {
		h.logger.Error("POST /turns - No resolver in request context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), resolver, useCaseReq)
	if err != nil {
		var stale *domain.StaleSlotError
		switch {
		case errors.As(err, &stale):
			h.logger.Warn("POST /turns - Slot no longer offered: user_id=%s, specialty_id=%s, %s %s",
				userID, req.SpecialtyID, req.Date, req.Time)
			handlers.RespondStaleSlot(w, stale)

		case errors.Is(err, domain.ErrCatalogUnavailable):
			h.logger.Warn("POST /turns - Catalog unavailable: specialty_id=%s", req.SpecialtyID)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		case errors.Is(err, domain.ErrSpecialtyNotFound):
			h.logger.Warn("POST /turns - Specialty not found: specialty_id=%s", req.SpecialtyID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, createTurn.ErrInvalidInput), errors.Is(err, domain.ErrInvalidTurn):
			h.logger.Warn("POST /turns - Invalid turn: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTurn)

		case errors.Is(err, createTurn.ErrRejected):
			h.logger.Warn("POST /turns - Rejected by store: user_id=%s, error=%v", userID, err)
			handlers.RespondUnprocessable(w, msgRejected)

		default:
			h.logger.Error("POST /turns - Failed to create turn: user_id=%s, specialty_id=%s, error=%v",
				userID, req.SpecialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turns - Turn created: turn_id=%s, user_id=%s, specialty_id=%s",
		result.Turn.ID, userID, req.SpecialtyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

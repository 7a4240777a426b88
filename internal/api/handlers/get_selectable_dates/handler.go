package get_selectable_dates

import (
	"errors"
	"net/http"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/api/middleware"
	"github.com/hospital/turns-service/internal/domain"
	getAvailableSlots "github.com/hospital/turns-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidSpecialtyID = "некорректный ID специальности"
	msgInvalidQuery       = "некорректные параметры: from в формате YYYY-MM-DD, days от 1 до 92"
	msgSpecialtyNotFound  = "специальность не найдена"
	msgCatalogUnavailable = "расписание временно недоступно, повторите попытку"
)

type Handler struct {
	useCase SelectableDatesUseCase
	logger  Logger
}

func NewHandler(useCase SelectableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialties/{specialtyId}/selectable-dates
// Query params: from (optional, YYYY-MM-DD), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := handlers.PathUUID(r, "specialtyId")
	if err != nil {
		h.logger.Warn("GET /specialties/{id}/selectable-dates - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(specialtyID, query.Get("from"), query.Get("days"))
	if err != nil {
		h.logger.Warn("GET /specialties/{id}/selectable-dates - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resolver, ok := middleware.GetResolver(r.Context())
	if !ok {
		h.logger.Error("GET /specialties/{id}/selectable-dates - No resolver in request context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.SelectableDates(r.Context(), resolver, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCatalogUnavailable):
			h.logger.Warn("GET /specialties/{id}/selectable-dates - Catalog unavailable: specialty_id=%s", specialtyID)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		case errors.Is(err, domain.ErrSpecialtyNotFound):
			h.logger.Warn("GET /specialties/{id}/selectable-dates - Specialty not found: specialty_id=%s", specialtyID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /specialties/{id}/selectable-dates - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /specialties/{id}/selectable-dates - Failed: specialty_id=%s, error=%v", specialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /specialties/{id}/selectable-dates - specialty_id=%s, days=%d", specialtyID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

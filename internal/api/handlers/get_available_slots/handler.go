package get_available_slots

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
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSpecialtyNotFound  = "специальность не найдена"
	msgCatalogUnavailable = "расписание временно недоступно, повторите попытку"
	msgInvalidRequest     = "некорректный запрос"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialties/{specialtyId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := handlers.PathUUID(r, "specialtyId")
	if err != nil {
		h.logger.Warn("GET /specialties/{id}/slots - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /specialties/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(specialtyID, dateStr)
	if err != nil {
		h.logger.Warn("GET /specialties/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resolver, ok := middleware.GetResolver(r.Context())
	if !ok {
		h.logger.Error("GET /specialties/{id}/slots - No resolver in request context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), resolver, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCatalogUnavailable):
			h.logger.Warn("GET /specialties/{id}/slots - Catalog unavailable: specialty_id=%s", specialtyID)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		case errors.Is(err, domain.ErrSpecialtyNotFound):
			h.logger.Warn("GET /specialties/{id}/slots - Specialty not found: specialty_id=%s", specialtyID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /specialties/{id}/slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /specialties/{id}/slots - Failed to get slots: specialty_id=%s, error=%v",
				specialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /specialties/{id}/slots - Slots retrieved: specialty_id=%s, date=%s, slots_count=%d",
		specialtyID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

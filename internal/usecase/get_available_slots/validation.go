package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// validateRequest валидирует запрос слотов
func validateRequest(req *Request) error {
	if req.SpecialtyID == uuid.Nil {
		return fmt.Errorf("%w: specialtyID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDatesRequest валидирует запрос календаря
func validateDatesRequest(req *DatesRequest) error {
	if req.SpecialtyID == uuid.Nil {
		return fmt.Errorf("%w: specialtyID is required", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > domain.MaxSelectableDaysRange {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxSelectableDaysRange)
	}

	return nil
}

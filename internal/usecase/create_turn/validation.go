package create_turn

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует то, что не проверяет domain.NewTurn
func validateRequest(req *Request) error {
	if req.SpecialtyID == uuid.Nil {
		return fmt.Errorf("%w: specialtyID is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	return nil
}

package reschedule_turn

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// validatePrepareRequest валидирует запрос подготовки
func validatePrepareRequest(req *PrepareRequest) error {
	if req.TurnID == uuid.Nil {
		return fmt.Errorf("%w: turnID is required", ErrInvalidInput)
	}

	if req.SpecialtyID != nil && *req.SpecialtyID == uuid.Nil {
		return fmt.Errorf("%w: specialtyID must not be empty", ErrInvalidInput)
	}

	return nil
}

// resolveSpecialty специальность из запроса, иначе из талона
func resolveSpecialty(override *uuid.UUID, turn *domain.Turn) (uuid.UUID, error) {
	if override != nil {
		return *override, nil
	}
	if turn.SpecialtyID != nil && *turn.SpecialtyID != uuid.Nil {
		return *turn.SpecialtyID, nil
	}
	return uuid.Nil, fmt.Errorf("%w: turn %s has no specialty", domain.ErrMissingSpecialtyContext, turn.ID)
}

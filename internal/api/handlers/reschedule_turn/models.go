package reschedule_turn

import (
	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/api/handlers"
	rescheduleTurn "github.com/hospital/turns-service/internal/usecase/reschedule_turn"
	"github.com/hospital/turns-service/pkg/types"
)

// RescheduleTurnRequest HTTP request model
type RescheduleTurnRequest struct {
	SpecialtyID *uuid.UUID `json:"specialtyId,omitempty"`
	Date        string     `json:"date"` // "2026-03-04"
	Time        string     `json:"time"` // "14:30"
	Reason      *string    `json:"reason,omitempty"`
}

// RescheduleTurnResponse HTTP response model
type RescheduleTurnResponse struct {
	Message string                 `json:"message,omitempty"`
	Turn    *handlers.TurnResponse `json:"turn"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleTurnRequest) ToUseCaseRequest(turnID uuid.UUID) (*rescheduleTurn.Request, error) {
	date, err := types.ParseDate(r.Date, nil)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &rescheduleTurn.Request{
		TurnID:      turnID,
		SpecialtyID: r.SpecialtyID,
		Date:        date.Time,
		Time:        t,
		Reason:      r.Reason,
	}, nil
}

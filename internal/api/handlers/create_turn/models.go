package create_turn

import (
	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/api/handlers"
	createTurn "github.com/hospital/turns-service/internal/usecase/create_turn"
	"github.com/hospital/turns-service/pkg/types"
)

// CreateTurnRequest HTTP request model
type CreateTurnRequest struct {
	SpecialtyID       uuid.UUID   `json:"specialtyId"`
	Reason            string      `json:"reason"`
	ServiceIDs        []uuid.UUID `json:"serviceIds"`
	Date              string      `json:"date"` // "2026-03-02"
	Time              string      `json:"time"` // "09:30"
	HealthInsuranceID *uuid.UUID  `json:"healthInsuranceId,omitempty"`
	DoctorID          *uuid.UUID  `json:"doctorId,omitempty"`
}

// CreateTurnResponse HTTP response model
type CreateTurnResponse struct {
	Turn       *handlers.TurnResponse `json:"turn"`
	PaymentURL *string                `json:"paymentUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTurnRequest) ToUseCaseRequest(userID uuid.UUID) (*createTurn.Request, error) {
	date, err := types.ParseDate(r.Date, nil)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createTurn.Request{
		UserID:            userID,
		SpecialtyID:       r.SpecialtyID,
		Reason:            r.Reason,
		ServiceIDs:        r.ServiceIDs,
		Date:              date.Time,
		Time:              t,
		HealthInsuranceID: r.HealthInsuranceID,
		DoctorID:          r.DoctorID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTurn.Response) *CreateTurnResponse {
	return &CreateTurnResponse{
		Turn:       handlers.FromDomainTurn(resp.Turn),
		PaymentURL: resp.PaymentURL,
	}
}

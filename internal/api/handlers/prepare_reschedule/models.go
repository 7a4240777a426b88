package prepare_reschedule

import (
	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/domain"
	rescheduleTurn "github.com/hospital/turns-service/internal/usecase/reschedule_turn"
)

// PrepareRescheduleRequest HTTP request model; тело необязательно
type PrepareRescheduleRequest struct {
	SpecialtyID *uuid.UUID `json:"specialtyId,omitempty"`
}

// PrepareRescheduleResponse HTTP response model.
// Date и Slots заполнены, только если прежняя дата талона все еще выбираема.
type PrepareRescheduleResponse struct {
	Turn               *handlers.TurnResponse `json:"turn"`
	SpecialtyID        uuid.UUID              `json:"specialtyId"`
	IntervalMinutes    int                    `json:"intervalMinutes"`
	Date               *string                `json:"date,omitempty"`
	Slots              []string               `json:"slots"`
	CurrentSlotOffered bool                   `json:"currentSlotOffered"`
}

// FromSession конвертирует сессию переноса в HTTP response
func FromSession(session *rescheduleTurn.Session) *PrepareRescheduleResponse {
	slots := make([]string, len(session.Slots))
	for i, slot := range session.Slots {
		slots[i] = slot.String()
	}

	resp := &PrepareRescheduleResponse{
		Turn:               handlers.FromDomainTurn(session.Turn),
		SpecialtyID:        session.SpecialtyID,
		IntervalMinutes:    session.IntervalMinutes,
		Slots:              slots,
		CurrentSlotOffered: session.CurrentSlotOffered,
	}
	if session.Date != nil {
		date := session.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	return resp
}

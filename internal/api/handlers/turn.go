package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

const msgStaleSlot = "выбранное время больше недоступно, выберите другое"

// TurnResponse талон в ответах API
type TurnResponse struct {
	ID                uuid.UUID   `json:"id"`
	Reason            string      `json:"reason"`
	State             string      `json:"state"`
	Date              string      `json:"date"`
	Time              string      `json:"time"`
	UserID            uuid.UUID   `json:"userId"`
	DoctorID          *uuid.UUID  `json:"doctorId,omitempty"`
	ServiceIDs        []uuid.UUID `json:"serviceIds"`
	SpecialtyID       *uuid.UUID  `json:"specialtyId,omitempty"`
	HealthInsuranceID *uuid.UUID  `json:"healthInsuranceId,omitempty"`
	DateCreated       *string     `json:"dateCreated,omitempty"`
	DateLimit         *string     `json:"dateLimit,omitempty"`
}

// FromDomainTurn конвертирует талон в DTO
func FromDomainTurn(t *domain.Turn) *TurnResponse {
	if t == nil {
		return nil
	}

	resp := &TurnResponse{
		ID:                t.ID,
		Reason:            t.Reason,
		State:             string(t.State),
		Date:              t.Date.Format(domain.DateFormat),
		Time:              t.Time.String(),
		UserID:            t.UserID,
		DoctorID:          t.DoctorID,
		ServiceIDs:        t.ServiceIDs,
		SpecialtyID:       t.SpecialtyID,
		HealthInsuranceID: t.HealthInsuranceID,
	}
	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []uuid.UUID{}
	}
	if !t.DateCreated.IsZero() {
		created := t.DateCreated.Format(time.RFC3339)
		resp.DateCreated = &created
	}
	if t.DateLimit != nil {
		limit := t.DateLimit.Format(time.RFC3339)
		resp.DateLimit = &limit
	}
	return resp
}

// StaleSlotResponse 409 с актуальными слотами на дату, чтобы клиент предложил выбор заново
type StaleSlotResponse struct {
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Available []string `json:"available"`
}

// RespondStaleSlot пишет 409 со свежими слотами
func RespondStaleSlot(w http.ResponseWriter, stale *domain.StaleSlotError) {
	available := make([]string, 0, len(stale.Available))
	for _, slot := range stale.Available {
		available = append(available, slot.String())
	}

	RespondJSON(w, http.StatusConflict, StaleSlotResponse{
		Code:      http.StatusConflict,
		Message:   msgStaleSlot,
		Date:      stale.Date.Format(domain.DateFormat),
		Time:      stale.Time.String(),
		Available: available,
	})
}

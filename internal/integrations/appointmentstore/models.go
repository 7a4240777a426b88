package appointmentstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// Turn модель талона в формате хранилища
type Turn struct {
	ID                uuid.UUID      `json:"id"`
	Reason            string         `json:"reason"`
	State             string         `json:"state"`
	Date              string         `json:"date"` // YYYY-MM-DD
	Time              types.WireTime `json:"time"` // HH:MM:SS
	UserID            uuid.UUID      `json:"userId"`
	DoctorID          *uuid.UUID     `json:"doctorId,omitempty"`
	ServiceIDs        []uuid.UUID    `json:"serviceIds"`
	SpecialtyID       *uuid.UUID     `json:"specialtyId,omitempty"`
	HealthInsuranceID *uuid.UUID     `json:"healthInsuranceId,omitempty"`
	DateCreated       time.Time      `json:"dateCreated"`
	DateLimit         *time.Time     `json:"dateLimit,omitempty"`
}

// CreateTurnRequest тело запроса на создание талона
type CreateTurnRequest struct {
	Reason            string         `json:"reason"`
	State             string         `json:"state"`
	Date              string         `json:"date"`
	Time              types.WireTime `json:"time"`
	UserID            uuid.UUID      `json:"userId"`
	DoctorID          *uuid.UUID     `json:"doctorId,omitempty"`
	ServiceIDs        []uuid.UUID    `json:"serviceIds"`
	SpecialtyID       *uuid.UUID     `json:"specialtyId,omitempty"`
	HealthInsuranceID *uuid.UUID     `json:"healthInsuranceId,omitempty"`
}

// CreateTurnResponse ответ на создание талона
type CreateTurnResponse struct {
	Turn       Turn    `json:"turn"`
	PaymentURL *string `json:"paymentUrl,omitempty"`
}

// RescheduleRequest тело запроса на перенос
type RescheduleRequest struct {
	Date   string         `json:"date"`
	Time   types.WireTime `json:"time"`
	Reason *string        `json:"reason,omitempty"`
}

// RescheduleResponse ответ на перенос
type RescheduleResponse struct {
	Message string `json:"message"`
	Turn    Turn   `json:"turn"`
}

// UpdateStateRequest тело запроса на смену состояния
type UpdateStateRequest struct {
	State string `json:"state"`
}

// ErrorResponse модель ошибки от хранилища
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedTurn созданный талон и необязательная ссылка на оплату
type CreatedTurn struct {
	Turn       *domain.Turn
	PaymentURL *string
}

// RescheduledTurn перенесенный талон и сообщение хранилища
type RescheduledTurn struct {
	Message string
	Turn    *domain.Turn
}

func newCreateTurnRequest(payload *domain.TurnPayload) CreateTurnRequest {
	return CreateTurnRequest{
		Reason:            payload.Reason,
		State:             string(payload.State),
		Date:              payload.Date.Format(domain.DateFormat),
		Time:              types.NewWireTime(payload.Time),
		UserID:            payload.UserID,
		DoctorID:          payload.DoctorID,
		ServiceIDs:        payload.ServiceIDs,
		SpecialtyID:       payload.SpecialtyID,
		HealthInsuranceID: payload.HealthInsuranceID,
	}
}

func newRescheduleRequest(req *domain.RescheduleRequest) RescheduleRequest {
	return RescheduleRequest{
		Date:   req.Date.Format(domain.DateFormat),
		Time:   types.NewWireTime(req.Time),
		Reason: req.Reason,
	}
}

// toDomain конвертирует талон хранилища в доменную модель; даты разбираются в loc
func (t Turn) toDomain(loc *time.Location) (*domain.Turn, error) {
	state, err := domain.ParseTurnState(t.State)
	if err != nil {
		return nil, err
	}

	date, err := types.ParseDate(t.Date, loc)
	if err != nil {
		return nil, err
	}

	if err := t.Time.Time.Validate(); err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}

	return &domain.Turn{
		ID:                t.ID,
		Reason:            t.Reason,
		State:             state,
		Date:              date.Time,
		Time:              t.Time.Time,
		UserID:            t.UserID,
		DoctorID:          t.DoctorID,
		ServiceIDs:        t.ServiceIDs,
		SpecialtyID:       t.SpecialtyID,
		HealthInsuranceID: t.HealthInsuranceID,
		DateCreated:       t.DateCreated,
		DateLimit:         t.DateLimit,
	}, nil
}

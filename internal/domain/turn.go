package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/pkg/types"
)

// Turn represents a booked appointment. Owned by the appointment store;
// this service holds a transient view and produces validated mutations.
type Turn struct {
	ID                uuid.UUID
	Reason            string
	State             TurnState
	Date              time.Time
	Time              types.TimeString
	UserID            uuid.UUID
	DoctorID          *uuid.UUID
	ServiceIDs        []uuid.UUID
	SpecialtyID       *uuid.UUID // заполняется хранилищем, если услуга привязана к специальности
	HealthInsuranceID *uuid.UUID
	DateCreated       time.Time
	DateLimit         *time.Time
}

// IsActive returns true if the turn is waiting or accepted
func (t *Turn) IsActive() bool {
	return t.State.IsActive()
}

// IsTerminal returns true if no further transitions are possible
func (t *Turn) IsTerminal() bool {
	return t.State.IsTerminal()
}

// CanBeCancelled returns true if cancel is a legal transition from the current state
func (t *Turn) CanBeCancelled() bool {
	return CanTransition(t.State, StateCancelled)
}

// CanBeRescheduled returns true if date/time may still be changed
func (t *Turn) CanBeRescheduled() bool {
	return t.State.IsActive()
}

// NewTurnParams input of the booking flow
type NewTurnParams struct {
	Reason            string
	ServiceIDs        []uuid.UUID
	UserID            uuid.UUID
	Date              time.Time
	Time              types.TimeString
	HealthInsuranceID *uuid.UUID
	DoctorID          *uuid.UUID
	SpecialtyID       *uuid.UUID
}

// TurnPayload creation payload handed to the appointment store
type TurnPayload struct {
	Reason            string
	State             TurnState
	Date              time.Time
	Time              types.TimeString
	UserID            uuid.UUID
	DoctorID          *uuid.UUID
	ServiceIDs        []uuid.UUID
	SpecialtyID       *uuid.UUID
	HealthInsuranceID *uuid.UUID
}

// RescheduleRequest date/time mutation for an existing turn. Not persisted here.
type RescheduleRequest struct {
	TurnID uuid.UUID
	Date   time.Time
	Time   types.TimeString
	Reason *string
}

// StateChange validated state mutation for an existing turn
type StateChange struct {
	TurnID uuid.UUID
	From   TurnState
	To     TurnState
}

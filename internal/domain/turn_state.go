package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/pkg/types"
)

// TurnState represents the lifecycle state of a turn
type TurnState string

const (
	StateWaiting   TurnState = "waiting"
	StateAccepted  TurnState = "accepted"
	StateFinished  TurnState = "finished"
	StateCancelled TurnState = "cancelled"
	StateRejected  TurnState = "rejected"
)

// transitions is the complete edge set of the turn state graph.
// Anything not listed here is illegal.
var transitions = map[TurnState]map[TurnState]bool{
	StateWaiting: {
		StateAccepted:  true,
		StateRejected:  true,
		StateCancelled: true,
	},
	StateAccepted: {
		StateFinished:  true,
		StateCancelled: true,
	},
}

// ParseTurnState validates a state string (case-insensitive)
func ParseTurnState(s string) (TurnState, error) {
	state := TurnState(strings.ToLower(strings.TrimSpace(s)))
	if !state.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	return state, nil
}

// Valid returns true for the five known states
func (s TurnState) Valid() bool {
	switch s {
	case StateWaiting, StateAccepted, StateFinished, StateCancelled, StateRejected:
		return true
	}
	return false
}

// IsActive returns true for waiting and accepted
func (s TurnState) IsActive() bool {
	return s == StateWaiting || s == StateAccepted
}

// IsTerminal returns true for finished, cancelled and rejected
func (s TurnState) IsTerminal() bool {
	return s == StateFinished || s == StateCancelled || s == StateRejected
}

// CanTransition reports whether from -> to is an edge of the state graph
func CanTransition(from, to TurnState) bool {
	return transitions[from][to]
}

// NextStates returns the legal targets from the given state
func NextStates(from TurnState) []TurnState {
	targets := make([]TurnState, 0, len(transitions[from]))
	for _, candidate := range []TurnState{StateAccepted, StateFinished, StateCancelled, StateRejected} {
		if transitions[from][candidate] {
			targets = append(targets, candidate)
		}
	}
	return targets
}

// NewTurn validates creation input and shapes the payload in state waiting.
// The stale-slot check needs availability and is done by the caller.
func NewTurn(params NewTurnParams, allowServiceBundling bool) (*TurnPayload, error) {
	reason := strings.TrimSpace(params.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidTurn)
	}
	if len([]rune(reason)) > MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidTurn, MaxReasonLength)
	}

	switch {
	case len(params.ServiceIDs) == 0:
		return nil, fmt.Errorf("%w: a service is required", ErrInvalidTurn)
	case len(params.ServiceIDs) > 1 && !allowServiceBundling:
		return nil, fmt.Errorf("%w: exactly one service is allowed, got %d", ErrInvalidTurn, len(params.ServiceIDs))
	}
	seen := make(map[uuid.UUID]bool, len(params.ServiceIDs))
	for _, id := range params.ServiceIDs {
		if id == uuid.Nil {
			return nil, fmt.Errorf("%w: empty service id", ErrInvalidTurn)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate service id %s", ErrInvalidTurn, id)
		}
		seen[id] = true
	}

	if params.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidTurn)
	}
	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidTurn)
	}
	if err := params.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidTurn, err)
	}

	return &TurnPayload{
		Reason:            reason,
		State:             StateWaiting,
		Date:              types.StartOfDay(params.Date),
		Time:              params.Time,
		UserID:            params.UserID,
		DoctorID:          params.DoctorID,
		ServiceIDs:        params.ServiceIDs,
		SpecialtyID:       params.SpecialtyID,
		HealthInsuranceID: params.HealthInsuranceID,
	}, nil
}

// TransitionState validates turn.State -> to and returns the mutation.
// On an illegal pair nothing is produced.
func TransitionState(turn *Turn, to TurnState) (*StateChange, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, string(to))
	}
	if !CanTransition(turn.State, to) {
		return nil, &IllegalTransitionError{From: turn.State, To: to}
	}
	return &StateChange{TurnID: turn.ID, From: turn.State, To: to}, nil
}

// Cancel is TransitionState(turn, cancelled)
func Cancel(turn *Turn) (*StateChange, error) {
	return TransitionState(turn, StateCancelled)
}

// RequestReschedule shapes a date/time mutation. State is not changed;
// only waiting and accepted turns may be rescheduled.
func RequestReschedule(turn *Turn, date time.Time, t types.TimeString, reason *string) (*RescheduleRequest, error) {
	if !turn.CanBeRescheduled() {
		return nil, fmt.Errorf("%w: state %s", ErrTurnNotReschedulable, turn.State)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidTurn)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidTurn, err)
	}

	var normalized *string
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if len([]rune(trimmed)) > MaxReasonLength {
			return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidTurn, MaxReasonLength)
		}
		if trimmed != "" {
			normalized = &trimmed
		}
	}

	return &RescheduleRequest{
		TurnID: turn.ID,
		Date:   types.StartOfDay(date),
		Time:   t,
		Reason: normalized,
	}, nil
}

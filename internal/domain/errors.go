package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/hospital/turns-service/pkg/types"
)

var (
	// ErrCatalogUnavailable schedule catalog fetch failed; retryable by the caller
	ErrCatalogUnavailable = errors.New("schedule catalog unavailable")

	// ErrStaleSlot selected date/time is no longer offered at submit time
	ErrStaleSlot = errors.New("selected slot is no longer available")

	// ErrIllegalTransition state change is not an edge of the turn state graph
	ErrIllegalTransition = errors.New("illegal turn state transition")

	// ErrTurnNotReschedulable reschedule attempted on a terminal turn
	ErrTurnNotReschedulable = errors.New("turn cannot be rescheduled")

	// ErrMissingSpecialtyContext reschedule requested without a resolvable specialty
	ErrMissingSpecialtyContext = errors.New("missing specialty context")

	// ErrSpecialtyNotFound catalog does not know the specialty
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrTurnNotFound appointment store does not know the turn
	ErrTurnNotFound = errors.New("turn not found")

	// ErrInvalidTurn turn payload violates creation preconditions
	ErrInvalidTurn = errors.New("invalid turn")

	// ErrInvalidWindow schedule window is malformed
	ErrInvalidWindow = errors.New("invalid schedule window")

	// ErrUnknownDay day-of-week key is not recognized
	ErrUnknownDay = errors.New("unknown day of week")

	// ErrUnknownState turn state string is not recognized
	ErrUnknownState = errors.New("unknown turn state")
)

// IllegalTransitionError names the offending (from, to) pair
type IllegalTransitionError struct {
	From TurnState
	To   TurnState
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition.Error(), e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// StaleSlotError carries the freshly resolved slots so the caller can re-prompt
type StaleSlotError struct {
	Date      time.Time
	Time      types.TimeString
	Available []types.TimeString
}

func (e *StaleSlotError) Error() string {
	return fmt.Sprintf("%s: %s %s (%d slots offered)",
		ErrStaleSlot.Error(), e.Date.Format(DateFormat), e.Time, len(e.Available))
}

func (e *StaleSlotError) Unwrap() error {
	return ErrStaleSlot
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SpecialtySlotsConfig represents slot generation settings
// Supports hierarchical configuration:
// 1. Specialty-specific (specialty_id)
// 2. Global (NULL)
// 3. Built-in defaults when no row exists
type SpecialtySlotsConfig struct {
	ID                 int64
	SpecialtyID        *uuid.UUID // NULL = global config
	IntervalMinutes    int
	AdvanceBookingDays int // 0 = unlimited
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultSlotsConfig built-in configuration used when nothing is stored
func DefaultSlotsConfig() *SpecialtySlotsConfig {
	return &SpecialtySlotsConfig{
		IntervalMinutes:    DefaultIntervalMinutes,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}

// IsGlobalConfig returns true if this config is not bound to a specialty
func (c *SpecialtySlotsConfig) IsGlobalConfig() bool {
	return c.SpecialtyID == nil
}

// IsDefault returns true if the config was not loaded from storage
func (c *SpecialtySlotsConfig) IsDefault() bool {
	return c.ID == 0
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *SpecialtySlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// Validate checks interval and horizon bounds
func (c *SpecialtySlotsConfig) Validate() error {
	if c.IntervalMinutes < MinIntervalMinutes || c.IntervalMinutes > MaxIntervalMinutes {
		return fmt.Errorf("interval must be between %d and %d minutes, got %d",
			MinIntervalMinutes, MaxIntervalMinutes, c.IntervalMinutes)
	}
	if c.AdvanceBookingDays < MinAdvanceBookingDays || c.AdvanceBookingDays > MaxAdvanceBookingDays {
		return fmt.Errorf("advance booking days must be between %d and %d, got %d",
			MinAdvanceBookingDays, MaxAdvanceBookingDays, c.AdvanceBookingDays)
	}
	return nil
}

// Horizon returns the last bookable calendar day relative to today, or zero time if unlimited
func (c *SpecialtySlotsConfig) Horizon(today time.Time) time.Time {
	if !c.HasAdvanceBookingLimit() {
		return time.Time{}
	}
	return today.AddDate(0, 0, c.AdvanceBookingDays)
}

package domain

// Default configuration values
const (
	DefaultIntervalMinutes    = 30
	DefaultAdvanceBookingDays = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinIntervalMinutes    = 5
	MaxIntervalMinutes    = 480 // 8 hours
	MinAdvanceBookingDays = 0
	MaxAdvanceBookingDays = 365 // 1 year
	MaxReasonLength       = 500

	// MaxSelectableDaysRange ограничение на диапазон дат, проверяемых за один запрос
	MaxSelectableDaysRange = 92
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	WireTimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat     = "2006-01-02" // YYYY-MM-DD
)

// ActiveStates состояния, в которых талон занимает слот
var ActiveStates = []TurnState{
	StateWaiting,
	StateAccepted,
}

// TerminalStates состояния, из которых переходов нет
var TerminalStates = []TurnState{
	StateFinished,
	StateCancelled,
	StateRejected,
}

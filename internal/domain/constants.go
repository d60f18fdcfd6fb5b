package domain

// Slot generation constants
const (
	// SlotStepMinutes is the fixed increment between candidate slot starts
	SlotStepMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 hours
	PostalCodeLength          = 5
)

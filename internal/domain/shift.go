package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Shift is a coarse admission band for appointment start times,
// independent of any staff member's declared availability.
type Shift string

const (
	ShiftMorning    Shift = "Morning"
	ShiftAfternoon  Shift = "Afternoon"
	ShiftEvening    Shift = "Evening"
	ShiftOutOfShift Shift = "OutOfShift"
)

// ClassifyShift maps a time of day to its shift band by clock hour:
// [06:00, 12:00) Morning, [12:00, 18:00) Afternoon, [18:00, 22:59] Evening
// (hour 22 is Evening regardless of minutes), anything else OutOfShift.
// Total over all inputs, no error conditions.
func ClassifyShift(t types.TimeString) Shift {
	hour := t.Hour()

	switch {
	case hour >= 6 && hour < 12:
		return ShiftMorning
	case hour >= 12 && hour < 18:
		return ShiftAfternoon
	case hour >= 18 && hour <= 22:
		return ShiftEvening
	default:
		return ShiftOutOfShift
	}
}

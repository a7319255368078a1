package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a booked appointment between a client and a staff member
type Appointment struct {
	ID        int64
	ClientID  int64
	StaffID   int64
	ServiceID int64

	Date      time.Time        // Calendar day, no time component
	StartTime types.TimeString // Time of day within Date
	EndTime   types.TimeString // Always StartTime + service duration

	Status          AppointmentStatus
	StatusChangedAt *time.Time // Stamped on every status update, nil until then

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the appointment reached a final status
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanTransitionTo reports whether the status change is allowed:
// Pending -> Confirmed | Cancelled, Confirmed -> Completed | Cancelled,
// Completed and Cancelled are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Overlaps reports whether the half-open interval [start, end) collides with
// this appointment's interval. Touching endpoints do not count as overlap,
// so back-to-back appointments are allowed.
func (a *Appointment) Overlaps(start, end types.TimeString) bool {
	return start.IsBefore(a.EndTime) && end.IsAfter(a.StartTime)
}

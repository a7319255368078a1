package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a time of day without a date component,
// stored in canonical "HH:MM" form ("10:00", "18:30").
// It maps directly onto a postgres TIME column.
type TimeString string

const (
	timeStringLayout        = "15:04"
	timeStringLayoutSeconds = "15:04:05"

	minutesPerDay = 24 * 60
)

// NewTimeString extracts the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS" input.
// Seconds are truncated: scheduling granularity is one minute.
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(timeStringLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(timeStringLayoutSeconds, s); err == nil {
		return NewTimeString(t), nil
	}

	return "", fmt.Errorf("invalid time string format: %q (expected HH:MM or HH:MM:SS)", s)
}

// String returns the canonical "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}
	return nil
}

// Hour returns the hour component (0-23).
func (t TimeString) Hour() int {
	total, err := t.TotalMinutes()
	if err != nil {
		return 0
	}
	return total / 60
}

// Minute returns the minute component (0-59).
func (t TimeString) Minute() int {
	total, err := t.TotalMinutes()
	if err != nil {
		return 0
	}
	return total % 60
}

// TotalMinutes returns the offset from midnight in whole minutes.
func (t TimeString) TotalMinutes() (int, error) {
	parts := strings.SplitN(string(t), ":", 3)
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time string format: %q", string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hours in time string: %q", string(t))
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minutes in time string: %q", string(t))
	}

	return hours*60 + minutes, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Crossing midnight is an error: a booking interval never spans two days.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("time %s + %dmin is out of day range", string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Canonical "HH:MM" values compare correctly as strings.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan implements sql.Scanner: postgres TIME arrives as string, []byte
// or time.Time depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t) + ":00", nil
}

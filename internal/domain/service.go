package domain

import "time"

// Service represents a bookable service from the catalog.
// The scheduler only consumes DurationMinutes; name and price are carried
// for the catalog API.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// Event is a scheduled activity visitors can register for.
type Event struct {
	ID EventID

	Title       string
	Description string
	Location    string
	ImageURL    *string

	// StartDate carries date-only semantics at the edges; EndDate is
	// optional for single-day events.
	StartDate time.Time
	EndDate   *time.Time

	// Capacity is the maximum number of registrations; nil means unlimited.
	Capacity *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Registration records that a profile signed up for an event. At most one
// registration exists per (event, profile) pair.
type Registration struct {
	ID RegistrationID

	EventID   EventID
	ProfileID ProfileID

	RegisteredAt time.Time
}

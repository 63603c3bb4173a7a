package events

import "time"

// EventInput is the create/replace payload for events. Updates use
// full-replacement semantics.
type EventInput struct {
	Title       string
	Description string
	Location    string
	ImageURL    *string

	StartDate time.Time
	EndDate   *time.Time

	Capacity *int
}

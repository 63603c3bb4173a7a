package registrationrepo

import (
	"context"

	"github.com/shababna/engagement-api/internal/domain"
)

// Filter narrows List results. Nil fields are ignored.
type Filter struct {
	EventID *domain.EventID
}

// Repository provides access to persisted event registrations.
//
// List and ListByProfile return registrations ordered by RegisteredAt
// descending.
type Repository interface {
	// Create persists a registration. ErrDuplicate is returned when a
	// registration already exists for the same (event, profile) pair.
	Create(ctx context.Context, r domain.Registration) error

	GetByID(ctx context.Context, id domain.RegistrationID) (domain.Registration, error)
	GetByEventAndProfile(ctx context.Context, eventID domain.EventID, profileID domain.ProfileID) (domain.Registration, error)

	List(ctx context.Context, f Filter) ([]domain.Registration, error)
	ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Registration, error)

	// CountByEvent counts registrations for an event (capacity checks).
	CountByEvent(ctx context.Context, eventID domain.EventID) (int, error)

	Delete(ctx context.Context, id domain.RegistrationID) error
}

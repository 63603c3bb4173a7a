package volunteerrepo

import (
	"context"

	"github.com/shababna/engagement-api/internal/domain"
)

// Filter narrows List results. Nil fields are ignored.
type Filter struct {
	Status *domain.VolunteerStatus
}

// Repository provides access to persisted volunteer applications.
//
// List and ListByProfile return applications ordered by AppliedAt
// descending.
type Repository interface {
	Create(ctx context.Context, v domain.Volunteer) error
	Save(ctx context.Context, v domain.Volunteer) error

	GetByID(ctx context.Context, id domain.VolunteerID) (domain.Volunteer, error)
	List(ctx context.Context, f Filter) ([]domain.Volunteer, error)
	ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Volunteer, error)

	Delete(ctx context.Context, id domain.VolunteerID) error
}

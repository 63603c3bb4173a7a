package profilerepo

import (
	"context"

	"github.com/shababna/engagement-api/internal/domain"
)

// Repository provides access to persisted profiles.
//
// List returns profiles ordered by CreatedAt descending (id ascending as a
// tiebreaker) to keep admin listings deterministic.
type Repository interface {
	Create(ctx context.Context, p domain.Profile) error
	Save(ctx context.Context, p domain.Profile) error

	GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)

	Delete(ctx context.Context, id domain.ProfileID) error
}

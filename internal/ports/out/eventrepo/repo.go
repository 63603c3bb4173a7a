package eventrepo

import (
	"context"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
)

// Filter narrows List results. Nil fields are ignored.
//   - StartFrom keeps events with StartDate >= StartFrom
//   - StartTo keeps events with StartDate <= StartTo
//   - Location is a case-insensitive substring match
type Filter struct {
	StartFrom *time.Time
	StartTo   *time.Time
	Location  *string
}

// Repository provides access to persisted events.
//
// List returns events ordered by StartDate ascending (id ascending as a
// tiebreaker): upcoming events read naturally on the public site.
type Repository interface {
	Create(ctx context.Context, e domain.Event) error
	Save(ctx context.Context, e domain.Event) error

	GetByID(ctx context.Context, id domain.EventID) (domain.Event, error)
	List(ctx context.Context, f Filter) ([]domain.Event, error)

	Delete(ctx context.Context, id domain.EventID) error
}

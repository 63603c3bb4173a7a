package messagerepo

import (
	"context"

	"github.com/shababna/engagement-api/internal/domain"
)

// Filter narrows List results. Nil fields are ignored.
type Filter struct {
	Type   *domain.MessageType
	IsRead *bool
}

// Repository provides access to persisted messages.
//
// List and ListByProfile return messages ordered by CreatedAt descending.
type Repository interface {
	Create(ctx context.Context, m domain.Message) error
	Save(ctx context.Context, m domain.Message) error

	GetByID(ctx context.Context, id domain.MessageID) (domain.Message, error)
	List(ctx context.Context, f Filter) ([]domain.Message, error)
	ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Message, error)

	Delete(ctx context.Context, id domain.MessageID) error
}

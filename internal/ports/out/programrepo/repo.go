package programrepo

import (
	"context"

	"github.com/shababna/engagement-api/internal/domain"
)

// Filter narrows List results. Nil fields are ignored; Category is an
// exact match.
type Filter struct {
	Category *string
}

// Repository provides access to persisted programs.
//
// List returns programs ordered by CreatedAt descending.
type Repository interface {
	Create(ctx context.Context, p domain.Program) error
	Save(ctx context.Context, p domain.Program) error

	GetByID(ctx context.Context, id domain.ProgramID) (domain.Program, error)
	List(ctx context.Context, f Filter) ([]domain.Program, error)

	Delete(ctx context.Context, id domain.ProgramID) error
}

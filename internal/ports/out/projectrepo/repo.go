package projectrepo

import (
	"context"

	"github.com/shababna/engagement-api/internal/domain"
)

// Filter narrows List results. Nil fields are ignored.
type Filter struct {
	Status *domain.ProjectStatus
}

// Repository provides access to persisted projects.
//
// List returns projects ordered by CreatedAt descending.
type Repository interface {
	Create(ctx context.Context, p domain.Project) error
	Save(ctx context.Context, p domain.Project) error

	GetByID(ctx context.Context, id domain.ProjectID) (domain.Project, error)
	List(ctx context.Context, f Filter) ([]domain.Project, error)

	Delete(ctx context.Context, id domain.ProjectID) error
}

package catalog

import (
	"time"

	"github.com/shababna/engagement-api/internal/domain"
)

// ProgramInput is the create/replace payload for programs. Updates use
// full-replacement semantics: required fields must always be present and
// optional fields absent from the payload are cleared.
type ProgramInput struct {
	Title       string
	Description string
	Category    string
	ImageURL    *string
}

// ProjectInput is the create/replace payload for projects.
type ProjectInput struct {
	Title       string
	Description string
	Status      domain.ProjectStatus
	ImageURL    *string
	StartDate   *time.Time
	EndDate     *time.Time
}

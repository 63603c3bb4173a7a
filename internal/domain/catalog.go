package domain

import "time"

// Program is a long-running organizational program (education, sports, ...).
type Program struct {
	ID ProgramID

	Title       string
	Description string
	Category    string
	ImageURL    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPlanned, ProjectStatusActive, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

// Project is a time-bounded initiative shown on the public site.
type Project struct {
	ID ProjectID

	Title       string
	Description string
	Status      ProjectStatus
	ImageURL    *string

	// StartDate/EndDate carry date-only semantics at the edges.
	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

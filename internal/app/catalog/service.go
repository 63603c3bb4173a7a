// Package catalog holds the admin-curated public content: programs and
// projects. Events live in their own package because of registrations.
package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/domain"
	clockport "github.com/shababna/engagement-api/internal/ports/out/clock"
	"github.com/shababna/engagement-api/internal/ports/out/programrepo"
	"github.com/shababna/engagement-api/internal/ports/out/projectrepo"
)

type Service struct {
	programs programrepo.Repository
	projects projectrepo.Repository
	clk      clockport.Clock

	newProgramID func() domain.ProgramID
	newProjectID func() domain.ProjectID
}

func NewService(programs programrepo.Repository, projects projectrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		programs: programs,
		projects: projects,
		clk:      clk,
		newProgramID: func() domain.ProgramID {
			return domain.ProgramID(uuid.NewString())
		},
		newProjectID: func() domain.ProjectID {
			return domain.ProjectID(uuid.NewString())
		},
	}
}

// SetNewProgramIDForTest overrides program ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewProgramIDForTest(fn func() domain.ProgramID) {
	if fn != nil {
		s.newProgramID = fn
	}
}

// SetNewProjectIDForTest overrides project ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewProjectIDForTest(fn func() domain.ProjectID) {
	if fn != nil {
		s.newProjectID = fn
	}
}

// --- programs ---

func (s *Service) ListPrograms(ctx context.Context, f programrepo.Filter) ([]domain.Program, error) {
	return s.programs.List(ctx, f)
}

func (s *Service) GetProgram(ctx context.Context, id domain.ProgramID) (domain.Program, error) {
	p, err := s.programs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, programrepo.ErrNotFound) {
			return domain.Program{}, apperror.NotFound("Program not found")
		}
		return domain.Program{}, err
	}
	return p, nil
}

func (s *Service) CreateProgram(ctx context.Context, in ProgramInput) (domain.Program, error) {
	if err := validateProgramInput(in); err != nil {
		return domain.Program{}, err
	}
	now := s.clk.Now()
	p := domain.Program{
		ID:          s.newProgramID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    cloneStringPtr(in.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.programs.Create(ctx, p); err != nil {
		return domain.Program{}, err
	}
	return p, nil
}

func (s *Service) UpdateProgram(ctx context.Context, id domain.ProgramID, in ProgramInput) (domain.Program, error) {
	if err := validateProgramInput(in); err != nil {
		return domain.Program{}, err
	}
	p, err := s.programs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, programrepo.ErrNotFound) {
			return domain.Program{}, apperror.NotFound("Program not found")
		}
		return domain.Program{}, err
	}
	p.Title = strings.TrimSpace(in.Title)
	p.Description = strings.TrimSpace(in.Description)
	p.Category = strings.TrimSpace(in.Category)
	p.ImageURL = cloneStringPtr(in.ImageURL)
	p.UpdatedAt = s.clk.Now()
	if err := s.programs.Save(ctx, p); err != nil {
		if errors.Is(err, programrepo.ErrNotFound) {
			return domain.Program{}, apperror.NotFound("Program not found")
		}
		return domain.Program{}, err
	}
	return p, nil
}

func (s *Service) DeleteProgram(ctx context.Context, id domain.ProgramID) error {
	if err := s.programs.Delete(ctx, id); err != nil {
		if errors.Is(err, programrepo.ErrNotFound) {
			return apperror.NotFound("Program not found")
		}
		return err
	}
	return nil
}

// --- projects ---

func (s *Service) ListProjects(ctx context.Context, f projectrepo.Filter) ([]domain.Project, error) {
	return s.projects.List(ctx, f)
}

func (s *Service) GetProject(ctx context.Context, id domain.ProjectID) (domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			return domain.Project{}, apperror.NotFound("Project not found")
		}
		return domain.Project{}, err
	}
	return p, nil
}

func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (domain.Project, error) {
	in, err := validatedProjectInput(in)
	if err != nil {
		return domain.Project{}, err
	}
	now := s.clk.Now()
	p := domain.Project{
		ID:          s.newProjectID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		ImageURL:    cloneStringPtr(in.ImageURL),
		StartDate:   cloneTimePtr(in.StartDate),
		EndDate:     cloneTimePtr(in.EndDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (s *Service) UpdateProject(ctx context.Context, id domain.ProjectID, in ProjectInput) (domain.Project, error) {
	in, aerr := validatedProjectInput(in)
	if aerr != nil {
		return domain.Project{}, aerr
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			return domain.Project{}, apperror.NotFound("Project not found")
		}
		return domain.Project{}, err
	}
	p.Title = in.Title
	p.Description = in.Description
	p.Status = in.Status
	p.ImageURL = cloneStringPtr(in.ImageURL)
	p.StartDate = cloneTimePtr(in.StartDate)
	p.EndDate = cloneTimePtr(in.EndDate)
	p.UpdatedAt = s.clk.Now()
	if err := s.projects.Save(ctx, p); err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			return domain.Project{}, apperror.NotFound("Project not found")
		}
		return domain.Project{}, err
	}
	return p, nil
}

func (s *Service) DeleteProject(ctx context.Context, id domain.ProjectID) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			return apperror.NotFound("Project not found")
		}
		return err
	}
	return nil
}

// --- validation ---

func validateProgramInput(in ProgramInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return apperror.BadRequest("Description is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return apperror.BadRequest("Category is required")
	}
	return nil
}

func validatedProjectInput(in ProjectInput) (ProjectInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, apperror.BadRequest("Title is required")
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return in, apperror.BadRequest("Description is required")
	}
	if in.Status == "" {
		in.Status = domain.ProjectStatusPlanned
	}
	if !domain.ValidProjectStatus(in.Status) {
		return in, apperror.BadRequest("Status must be one of: planned, active, completed")
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return in, apperror.BadRequest("End date must be on or after start date")
	}
	return in, nil
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

package volunteers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/domain"
	clockport "github.com/shababna/engagement-api/internal/ports/out/clock"
	"github.com/shababna/engagement-api/internal/ports/out/volunteerrepo"
)

type Service struct {
	repo volunteerrepo.Repository
	clk  clockport.Clock

	newVolunteerID func() domain.VolunteerID
}

func NewService(repo volunteerrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newVolunteerID: func() domain.VolunteerID {
			return domain.VolunteerID(uuid.NewString())
		},
	}
}

// SetNewVolunteerIDForTest overrides application ID generation for
// deterministic tests. It should not be used in production code.
func (s *Service) SetNewVolunteerIDForTest(fn func() domain.VolunteerID) {
	if fn != nil {
		s.newVolunteerID = fn
	}
}

// Apply validates and persists a volunteer application. applicant is nil
// for anonymous callers; new applications always start pending.
func (s *Service) Apply(ctx context.Context, applicant *domain.ProfileID, in ApplyInput) (domain.Volunteer, error) {
	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.Volunteer{}, apperror.BadRequest("Name is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return domain.Volunteer{}, apperror.BadRequest("Email is required")
	}
	if !domain.ValidEmail(email) {
		return domain.Volunteer{}, apperror.BadRequest("Invalid email format")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return domain.Volunteer{}, apperror.BadRequest("Phone is required")
	}

	now := s.clk.Now()
	v := domain.Volunteer{
		ID:        s.newVolunteerID(),
		ProfileID: cloneProfileIDPtr(applicant),
		Name:      name,
		Email:     email,
		Phone:     phone,
		ResumeURL: cloneStringPtr(in.ResumeURL),
		Status:    domain.VolunteerStatusPending,
		AppliedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return domain.Volunteer{}, err
	}
	return v, nil
}

func (s *Service) ListApplications(ctx context.Context, f volunteerrepo.Filter) ([]domain.Volunteer, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) MyApplications(ctx context.Context, caller domain.ProfileID) ([]domain.Volunteer, error) {
	return s.repo.ListByProfile(ctx, caller)
}

func (s *Service) GetApplication(ctx context.Context, id domain.VolunteerID) (domain.Volunteer, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, volunteerrepo.ErrNotFound) {
			return domain.Volunteer{}, apperror.NotFound("Volunteer application not found")
		}
		return domain.Volunteer{}, err
	}
	return v, nil
}

// SetStatus transitions an application's review status (admin only at the
// HTTP layer).
func (s *Service) SetStatus(ctx context.Context, id domain.VolunteerID, status domain.VolunteerStatus) (domain.Volunteer, error) {
	if !domain.ValidVolunteerStatus(status) {
		return domain.Volunteer{}, apperror.BadRequest("Status must be one of: pending, approved, rejected")
	}
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, volunteerrepo.ErrNotFound) {
			return domain.Volunteer{}, apperror.NotFound("Volunteer application not found")
		}
		return domain.Volunteer{}, err
	}
	v.Status = status
	v.UpdatedAt = s.clk.Now()
	if err := s.repo.Save(ctx, v); err != nil {
		if errors.Is(err, volunteerrepo.ErrNotFound) {
			return domain.Volunteer{}, apperror.NotFound("Volunteer application not found")
		}
		return domain.Volunteer{}, err
	}
	return v, nil
}

func (s *Service) DeleteApplication(ctx context.Context, id domain.VolunteerID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, volunteerrepo.ErrNotFound) {
			return apperror.NotFound("Volunteer application not found")
		}
		return err
	}
	return nil
}

func cloneProfileIDPtr(p *domain.ProfileID) *domain.ProfileID {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

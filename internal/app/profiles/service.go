package profiles

import (
	"context"
	"errors"

	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/domain"
	clockport "github.com/shababna/engagement-api/internal/ports/out/clock"
	"github.com/shababna/engagement-api/internal/ports/out/profilerepo"
)

type Service struct {
	repo profilerepo.Repository
	clk  clockport.Clock
}

func NewService(repo profilerepo.Repository, clk clockport.Clock) *Service {
	return &Service{repo: repo, clk: clk}
}

// RoleFor resolves the role for an identity. A missing profile is not an
// error: the caller simply has no admin privileges.
func (s *Service) RoleFor(ctx context.Context, id domain.ProfileID) (domain.Role, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return domain.RoleUser, nil
		}
		return "", err
	}
	if !domain.ValidRole(p.Role) {
		return domain.RoleUser, nil
	}
	return p.Role, nil
}

func (s *Service) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetProfile(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return domain.Profile{}, apperror.NotFound("Profile not found")
		}
		return domain.Profile{}, err
	}
	return p, nil
}

// UpdateMyProfile applies a self-service update. The first write for an
// identity provisions the profile row with the default user role.
func (s *Service) UpdateMyProfile(ctx context.Context, caller domain.ProfileID, in UpdateMyProfileInput) (domain.Profile, error) {
	p, err := s.repo.GetByID(ctx, caller)
	provisioning := false
	if err != nil {
		if !errors.Is(err, profilerepo.ErrNotFound) {
			return domain.Profile{}, err
		}
		provisioning = true
		now := s.clk.Now()
		p = domain.Profile{
			ID:        caller,
			Role:      domain.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	if in.FullName.IsSpecified() {
		name, aerr := normalizedFullName(in.FullName)
		if aerr != nil {
			return domain.Profile{}, aerr
		}
		p.FullName = name
	} else if provisioning {
		return domain.Profile{}, apperror.BadRequest("Full name is required")
	}

	applyAvatar(&p, in.AvatarURL)

	p.UpdatedAt = s.clk.Now()
	if provisioning {
		if err := s.repo.Create(ctx, p); err != nil {
			if errors.Is(err, profilerepo.ErrAlreadyExists) {
				// Lost a race with another first write; retry as a plain save.
				return s.UpdateMyProfile(ctx, caller, in)
			}
			return domain.Profile{}, err
		}
		return p, nil
	}
	if err := s.repo.Save(ctx, p); err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return domain.Profile{}, apperror.NotFound("Profile not found")
		}
		return domain.Profile{}, err
	}
	return p, nil
}

func (s *Service) AdminUpdateProfile(ctx context.Context, id domain.ProfileID, in AdminUpdateProfileInput) (domain.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return domain.Profile{}, apperror.NotFound("Profile not found")
		}
		return domain.Profile{}, err
	}

	if in.FullName.IsSpecified() {
		name, aerr := normalizedFullName(in.FullName)
		if aerr != nil {
			return domain.Profile{}, aerr
		}
		p.FullName = name
	}

	applyAvatar(&p, in.AvatarURL)

	if in.Role.IsSpecified() {
		if in.Role.IsNull() || !domain.ValidRole(in.Role.Value()) {
			return domain.Profile{}, apperror.BadRequest("Role must be one of: admin, user")
		}
		p.Role = in.Role.Value()
	}

	p.UpdatedAt = s.clk.Now()
	if err := s.repo.Save(ctx, p); err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return domain.Profile{}, apperror.NotFound("Profile not found")
		}
		return domain.Profile{}, err
	}
	return p, nil
}

// DeleteProfile removes a profile. Callers can never delete their own
// profile, admin or not.
func (s *Service) DeleteProfile(ctx context.Context, caller domain.ProfileID, id domain.ProfileID) error {
	if caller == id {
		return apperror.BadRequest("You cannot delete your own profile")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}
	return nil
}

func normalizedFullName(o Optional[string]) (string, *apperror.Error) {
	if o.IsNull() {
		return "", apperror.BadRequest("Full name is required")
	}
	name := domain.NormalizeHumanName(o.Value())
	if name == "" {
		return "", apperror.BadRequest("Full name is required")
	}
	return name, nil
}

func applyAvatar(p *domain.Profile, o Optional[string]) {
	if !o.IsSpecified() {
		return
	}
	if o.IsNull() {
		p.AvatarURL = nil
		return
	}
	v := o.Value()
	p.AvatarURL = &v
}

package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/domain"
	clockport "github.com/shababna/engagement-api/internal/ports/out/clock"
	"github.com/shababna/engagement-api/internal/ports/out/eventrepo"
	"github.com/shababna/engagement-api/internal/ports/out/registrationrepo"
)

type Service struct {
	events eventrepo.Repository
	regs   registrationrepo.Repository
	clk    clockport.Clock

	newEventID        func() domain.EventID
	newRegistrationID func() domain.RegistrationID
}

func NewService(events eventrepo.Repository, regs registrationrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		events: events,
		regs:   regs,
		clk:    clk,
		newEventID: func() domain.EventID {
			return domain.EventID(uuid.NewString())
		},
		newRegistrationID: func() domain.RegistrationID {
			return domain.RegistrationID(uuid.NewString())
		},
	}
}

// SetNewEventIDForTest overrides event ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewEventIDForTest(fn func() domain.EventID) {
	if fn != nil {
		s.newEventID = fn
	}
}

// SetNewRegistrationIDForTest overrides registration ID generation for
// deterministic tests. It should not be used in production code.
func (s *Service) SetNewRegistrationIDForTest(fn func() domain.RegistrationID) {
	if fn != nil {
		s.newRegistrationID = fn
	}
}

// --- events ---

func (s *Service) ListEvents(ctx context.Context, f eventrepo.Filter) ([]domain.Event, error) {
	return s.events.List(ctx, f)
}

func (s *Service) GetEvent(ctx context.Context, id domain.EventID) (domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return domain.Event{}, apperror.NotFound("Event not found")
		}
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Service) CreateEvent(ctx context.Context, in EventInput) (domain.Event, error) {
	in, err := validatedEventInput(in)
	if err != nil {
		return domain.Event{}, err
	}
	now := s.clk.Now()
	e := domain.Event{
		ID:          s.newEventID(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		ImageURL:    cloneStringPtr(in.ImageURL),
		StartDate:   in.StartDate.UTC(),
		EndDate:     cloneTimePtr(in.EndDate),
		Capacity:    cloneIntPtr(in.Capacity),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id domain.EventID, in EventInput) (domain.Event, error) {
	in, aerr := validatedEventInput(in)
	if aerr != nil {
		return domain.Event{}, aerr
	}
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return domain.Event{}, apperror.NotFound("Event not found")
		}
		return domain.Event{}, err
	}
	e.Title = in.Title
	e.Description = in.Description
	e.Location = in.Location
	e.ImageURL = cloneStringPtr(in.ImageURL)
	e.StartDate = in.StartDate.UTC()
	e.EndDate = cloneTimePtr(in.EndDate)
	e.Capacity = cloneIntPtr(in.Capacity)
	e.UpdatedAt = s.clk.Now()
	if err := s.events.Save(ctx, e); err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return domain.Event{}, apperror.NotFound("Event not found")
		}
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id domain.EventID) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return apperror.NotFound("Event not found")
		}
		return err
	}
	return nil
}

// --- registrations ---

// Register signs the caller up for an event:
//  1. the event must exist
//  2. if the event declares a capacity, there must be room left
//  3. the caller must not already be registered
//
// Steps 2-3 and the insert are separate store calls. The duplicate check is
// backed by a unique constraint in the Postgres adapter, so a concurrent
// duplicate surfaces as ErrDuplicate on insert; the capacity check has no
// such backstop and can over-admit under concurrency.
func (s *Service) Register(ctx context.Context, caller domain.ProfileID, eventID domain.EventID) (domain.Registration, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return domain.Registration{}, apperror.NotFound("Event not found")
		}
		return domain.Registration{}, err
	}

	if e.Capacity != nil {
		n, err := s.regs.CountByEvent(ctx, eventID)
		if err != nil {
			return domain.Registration{}, err
		}
		if n >= *e.Capacity {
			return domain.Registration{}, apperror.BadRequest("Event is at capacity")
		}
	}

	if _, err := s.regs.GetByEventAndProfile(ctx, eventID, caller); err == nil {
		return domain.Registration{}, apperror.BadRequest("You are already registered for this event")
	} else if !errors.Is(err, registrationrepo.ErrNotFound) {
		return domain.Registration{}, err
	}

	r := domain.Registration{
		ID:           s.newRegistrationID(),
		EventID:      eventID,
		ProfileID:    caller,
		RegisteredAt: s.clk.Now(),
	}
	if err := s.regs.Create(ctx, r); err != nil {
		if errors.Is(err, registrationrepo.ErrDuplicate) {
			return domain.Registration{}, apperror.BadRequest("You are already registered for this event")
		}
		return domain.Registration{}, err
	}
	return r, nil
}

func (s *Service) ListRegistrations(ctx context.Context, f registrationrepo.Filter) ([]domain.Registration, error) {
	return s.regs.List(ctx, f)
}

func (s *Service) MyRegistrations(ctx context.Context, caller domain.ProfileID) ([]domain.Registration, error) {
	return s.regs.ListByProfile(ctx, caller)
}

func (s *Service) DeleteRegistration(ctx context.Context, id domain.RegistrationID) error {
	if err := s.regs.Delete(ctx, id); err != nil {
		if errors.Is(err, registrationrepo.ErrNotFound) {
			return apperror.NotFound("Registration not found")
		}
		return err
	}
	return nil
}

// --- validation ---

func validatedEventInput(in EventInput) (EventInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, apperror.BadRequest("Title is required")
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return in, apperror.BadRequest("Description is required")
	}
	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" {
		return in, apperror.BadRequest("Location is required")
	}
	if in.StartDate.IsZero() {
		return in, apperror.BadRequest("Start date is required")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return in, apperror.BadRequest("End date must be on or after start date")
	}
	if in.Capacity != nil && *in.Capacity < 1 {
		return in, apperror.BadRequest("Capacity must be at least 1")
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

func cloneIntPtr(p *int) *int {
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
	v := p.UTC()
	return &v
}

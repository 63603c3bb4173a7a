package registrationrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/registrationrepo"
)

type pairKey struct {
	event   domain.EventID
	profile domain.ProfileID
}

// Repo is an in-memory implementation of registrationrepo.Repository.
// It is safe for concurrent use. A secondary (event, profile) index
// enforces the one-registration-per-pair rule.
type Repo struct {
	mu     sync.RWMutex
	byID   map[domain.RegistrationID]domain.Registration
	byPair map[pairKey]domain.RegistrationID
}

func NewRepo() *Repo {
	return &Repo{
		byID:   make(map[domain.RegistrationID]domain.Registration),
		byPair: make(map[pairKey]domain.RegistrationID),
	}
}

func (r *Repo) Create(ctx context.Context, reg domain.Registration) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{event: reg.EventID, profile: reg.ProfileID}
	if _, ok := r.byPair[key]; ok {
		return registrationrepo.ErrDuplicate
	}
	r.byID[reg.ID] = reg
	r.byPair[key] = reg.ID
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.RegistrationID) (domain.Registration, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.byID[id]
	if !ok {
		return domain.Registration{}, registrationrepo.ErrNotFound
	}
	return reg, nil
}

func (r *Repo) GetByEventAndProfile(ctx context.Context, eventID domain.EventID, profileID domain.ProfileID) (domain.Registration, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[pairKey{event: eventID, profile: profileID}]
	if !ok {
		return domain.Registration{}, registrationrepo.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *Repo) List(ctx context.Context, f registrationrepo.Filter) ([]domain.Registration, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Registration, 0)
	for _, reg := range r.byID {
		if f.EventID != nil && reg.EventID != *f.EventID {
			continue
		}
		out = append(out, reg)
	}
	sortRegistrationsNewestFirst(out)
	return out, nil
}

func (r *Repo) ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Registration, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Registration, 0)
	for _, reg := range r.byID {
		if reg.ProfileID != profileID {
			continue
		}
		out = append(out, reg)
	}
	sortRegistrationsNewestFirst(out)
	return out, nil
}

func (r *Repo) CountByEvent(ctx context.Context, eventID domain.EventID) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, reg := range r.byID {
		if reg.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.RegistrationID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok {
		return registrationrepo.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byPair, pairKey{event: reg.EventID, profile: reg.ProfileID})
	return nil
}

func sortRegistrationsNewestFirst(regs []domain.Registration) {
	sort.Slice(regs, func(i, j int) bool {
		if regs[i].RegisteredAt.Equal(regs[j].RegisteredAt) {
			return regs[i].ID < regs[j].ID
		}
		return regs[i].RegisteredAt.After(regs[j].RegisteredAt)
	})
}

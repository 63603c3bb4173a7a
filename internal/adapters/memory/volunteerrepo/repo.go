package volunteerrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/volunteerrepo"
)

// Repo is an in-memory implementation of volunteerrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.VolunteerID]domain.Volunteer
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.VolunteerID]domain.Volunteer)}
}

func (r *Repo) Create(ctx context.Context, v domain.Volunteer) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[v.ID]; ok {
		return volunteerrepo.ErrAlreadyExists
	}
	r.byID[v.ID] = cloneVolunteer(v)
	return nil
}

func (r *Repo) Save(ctx context.Context, v domain.Volunteer) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[v.ID]; !ok {
		return volunteerrepo.ErrNotFound
	}
	r.byID[v.ID] = cloneVolunteer(v)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.VolunteerID) (domain.Volunteer, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[id]
	if !ok {
		return domain.Volunteer{}, volunteerrepo.ErrNotFound
	}
	return cloneVolunteer(v), nil
}

func (r *Repo) List(ctx context.Context, f volunteerrepo.Filter) ([]domain.Volunteer, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Volunteer, 0)
	for _, v := range r.byID {
		if f.Status != nil && v.Status != *f.Status {
			continue
		}
		out = append(out, cloneVolunteer(v))
	}
	sortVolunteersNewestFirst(out)
	return out, nil
}

func (r *Repo) ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Volunteer, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Volunteer, 0)
	for _, v := range r.byID {
		if v.ProfileID == nil || *v.ProfileID != profileID {
			continue
		}
		out = append(out, cloneVolunteer(v))
	}
	sortVolunteersNewestFirst(out)
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.VolunteerID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return volunteerrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneVolunteer(v domain.Volunteer) domain.Volunteer {
	out := v
	if v.ProfileID != nil {
		id := *v.ProfileID
		out.ProfileID = &id
	}
	if v.ResumeURL != nil {
		u := *v.ResumeURL
		out.ResumeURL = &u
	}
	return out
}

func sortVolunteersNewestFirst(vs []domain.Volunteer) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].AppliedAt.Equal(vs[j].AppliedAt) {
			return vs[i].ID < vs[j].ID
		}
		return vs[i].AppliedAt.After(vs[j].AppliedAt)
	})
}

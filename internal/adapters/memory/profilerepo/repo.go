package profilerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/profilerepo"
)

// Repo is an in-memory implementation of profilerepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.ProfileID]domain.Profile
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.ProfileID]domain.Profile)}
}

func (r *Repo) Create(ctx context.Context, p domain.Profile) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return profilerepo.ErrAlreadyExists
	}
	r.byID[p.ID] = cloneProfile(p)
	return nil
}

func (r *Repo) Save(ctx context.Context, p domain.Profile) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return profilerepo.ErrNotFound
	}
	r.byID[p.ID] = cloneProfile(p)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return domain.Profile{}, profilerepo.ErrNotFound
	}
	return cloneProfile(p), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, cloneProfile(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ProfileID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return profilerepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneProfile(p domain.Profile) domain.Profile {
	out := p
	if p.AvatarURL != nil {
		v := *p.AvatarURL
		out.AvatarURL = &v
	}
	return out
}

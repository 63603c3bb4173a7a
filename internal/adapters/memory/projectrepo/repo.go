package projectrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/projectrepo"
)

// Repo is an in-memory implementation of projectrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.ProjectID]domain.Project
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.ProjectID]domain.Project)}
}

func (r *Repo) Create(ctx context.Context, p domain.Project) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return projectrepo.ErrAlreadyExists
	}
	r.byID[p.ID] = cloneProject(p)
	return nil
}

func (r *Repo) Save(ctx context.Context, p domain.Project) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return projectrepo.ErrNotFound
	}
	r.byID[p.ID] = cloneProject(p)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ProjectID) (domain.Project, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return domain.Project{}, projectrepo.ErrNotFound
	}
	return cloneProject(p), nil
}

func (r *Repo) List(ctx context.Context, f projectrepo.Filter) ([]domain.Project, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, 0)
	for _, p := range r.byID {
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ProjectID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return projectrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneProject(p domain.Project) domain.Project {
	out := p
	if p.ImageURL != nil {
		v := *p.ImageURL
		out.ImageURL = &v
	}
	out.StartDate = cloneTimePtr(p.StartDate)
	out.EndDate = cloneTimePtr(p.EndDate)
	return out
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

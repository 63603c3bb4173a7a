package programrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/programrepo"
)

// Repo is an in-memory implementation of programrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.ProgramID]domain.Program
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.ProgramID]domain.Program)}
}

func (r *Repo) Create(ctx context.Context, p domain.Program) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return programrepo.ErrAlreadyExists
	}
	r.byID[p.ID] = cloneProgram(p)
	return nil
}

func (r *Repo) Save(ctx context.Context, p domain.Program) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return programrepo.ErrNotFound
	}
	r.byID[p.ID] = cloneProgram(p)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ProgramID) (domain.Program, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return domain.Program{}, programrepo.ErrNotFound
	}
	return cloneProgram(p), nil
}

func (r *Repo) List(ctx context.Context, f programrepo.Filter) ([]domain.Program, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Program, 0)
	for _, p := range r.byID {
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		out = append(out, cloneProgram(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ProgramID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return programrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneProgram(p domain.Program) domain.Program {
	out := p
	if p.ImageURL != nil {
		v := *p.ImageURL
		out.ImageURL = &v
	}
	return out
}

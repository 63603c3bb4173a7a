package eventrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/eventrepo"
)

// Repo is an in-memory implementation of eventrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.EventID]domain.Event
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.EventID]domain.Event)}
}

func (r *Repo) Create(ctx context.Context, e domain.Event) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; ok {
		return eventrepo.ErrAlreadyExists
	}
	r.byID[e.ID] = cloneEvent(e)
	return nil
}

func (r *Repo) Save(ctx context.Context, e domain.Event) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; !ok {
		return eventrepo.ErrNotFound
	}
	r.byID[e.ID] = cloneEvent(e)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.EventID) (domain.Event, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return domain.Event{}, eventrepo.ErrNotFound
	}
	return cloneEvent(e), nil
}

func (r *Repo) List(ctx context.Context, f eventrepo.Filter) ([]domain.Event, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Event, 0)
	for _, e := range r.byID {
		if f.StartFrom != nil && e.StartDate.Before(*f.StartFrom) {
			continue
		}
		if f.StartTo != nil && e.StartDate.After(*f.StartTo) {
			continue
		}
		if f.Location != nil && !strings.Contains(strings.ToLower(e.Location), strings.ToLower(*f.Location)) {
			continue
		}
		out = append(out, cloneEvent(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.EventID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return eventrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneEvent(e domain.Event) domain.Event {
	out := e
	if e.ImageURL != nil {
		v := *e.ImageURL
		out.ImageURL = &v
	}
	if e.EndDate != nil {
		v := *e.EndDate
		out.EndDate = &v
	}
	if e.Capacity != nil {
		v := *e.Capacity
		out.Capacity = &v
	}
	return out
}
